package entity

// Chain names the blockchain network a balance resides on.
// Any string is a valid Chain; only the constants below carry a display priority.
type Chain string

const (
	ChainOsmosis  Chain = "Osmosis"
	ChainEthereum Chain = "Ethereum"
	ChainArbitrum Chain = "Arbitrum"
	ChainZilliqa  Chain = "Zilliqa"
	ChainNeo      Chain = "Neo"
)

// UnknownChainPriority is the priority of every chain outside the known set.
const UnknownChainPriority = -99

var chainPriorities = map[Chain]int{
	ChainOsmosis:  100,
	ChainEthereum: 50,
	ChainArbitrum: 30,
	ChainZilliqa:  20,
	ChainNeo:      20,
}

// Priority returns the display rank of the chain. Matching is exact and case-sensitive.
func (c Chain) Priority() int {
	if p, ok := chainPriorities[c]; ok {
		return p
	}
	return UnknownChainPriority
}

// Known reports whether the chain belongs to the recognized set.
func (c Chain) Known() bool {
	_, ok := chainPriorities[c]
	return ok
}

func (c Chain) String() string {
	return string(c)
}
