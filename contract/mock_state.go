package contract

import (
	"encoding/json"
	"os"
)

// MockState keeps contract storage in a plain map. With a filename set it
// dumps the full map as JSON after every write so local debug sessions can
// inspect (and reload) the state between runs.
type MockState struct {
	db       map[string]string
	filename string
}

func NewMockState() *MockState {
	return &MockState{
		db: make(map[string]string),
	}
}

// NewMockStateFile returns a MockState that persists to the given JSON file.
func NewMockStateFile(filename string) *MockState {
	return &MockState{
		db:       make(map[string]string),
		filename: filename,
	}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
	if err := m.saveToFile(); err != nil {
		panic(err)
	}
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
	if err := m.saveToFile(); err != nil {
		panic(err)
	}
}

// saveToFile writes the full map to the JSON file, if one is configured.
func (m *MockState) saveToFile() error {
	if m.filename == "" {
		return nil
	}
	data, err := json.MarshalIndent(m.db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.filename, data, 0644)
}

// LoadFromFile loads the map from the JSON file.
func (m *MockState) LoadFromFile() {
	if m.filename == "" {
		return
	}
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return // file doesn't exist yet
		}
		panic(err)
	}
	if err := json.Unmarshal(data, &m.db); err != nil {
		panic(err)
	}
}
