package sdk

// Env is the execution environment snapshot the host hands to every call.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       string
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Caller is the direct invoker; equals the sender unless another contract
// called into this one.
type Caller struct {
	Address Address `json:"id"`
}

// envJSON mirrors the flat key layout of the host env blob.
//
//tinyjson:json
type envJSON struct {
	ContractId           string   `json:"contract.id"`
	TxId                 string   `json:"tx.id"`
	Index                int64    `json:"tx.index"`
	OpIndex              int64    `json:"tx.op_index"`
	BlockId              string   `json:"block.id"`
	BlockHeight          uint64   `json:"block.height"`
	Timestamp            string   `json:"block.timestamp"`
	Sender               string   `json:"msg.sender"`
	Caller               string   `json:"msg.caller"`
	RequiredAuths        []string `json:"msg.required_auths"`
	RequiredPostingAuths []string `json:"msg.required_posting_auths"`
	Payer                string   `json:"msg.payer"`
}

// parseEnv decodes the flat blob and folds the msg.* keys into Sender/Caller.
func parseEnv(raw string) (Env, error) {
	var flat envJSON
	if err := flat.UnmarshalJSON([]byte(raw)); err != nil {
		return Env{}, err
	}

	requiredAuths := make([]Address, 0, len(flat.RequiredAuths))
	for _, auth := range flat.RequiredAuths {
		requiredAuths = append(requiredAuths, Address(auth))
	}
	requiredPostingAuths := make([]Address, 0, len(flat.RequiredPostingAuths))
	for _, auth := range flat.RequiredPostingAuths {
		requiredPostingAuths = append(requiredPostingAuths, Address(auth))
	}

	caller := flat.Caller
	if caller == "" {
		caller = flat.Sender
	}

	return Env{
		ContractId:  flat.ContractId,
		TxId:        flat.TxId,
		Index:       flat.Index,
		OpIndex:     flat.OpIndex,
		BlockId:     flat.BlockId,
		BlockHeight: flat.BlockHeight,
		Timestamp:   flat.Timestamp,
		Sender: Sender{
			Address:              Address(flat.Sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		},
		Caller: Caller{Address: Address(caller)},
		Payer:  flat.Payer,
	}, nil
}
