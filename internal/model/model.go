package model

// TableStat - Statistics on the overall usage and clustering of an open addressing table
//   - Pairs is the number of key-value pairs stored
//   - TableSize is the number of slots in the table
//   - LoadFactor is Pairs / TableSize
//   - Clusters is the number of maximal runs of occupied slots, a run may wrap around the end of the table
//   - LongestCluster is the length of the longest such run
//   - ProbeDistribution is, per slot, the distance from the home slot of the key stored there (-1 for empty slots)
type TableStat struct {
	Pairs             int64
	TableSize         int64
	LoadFactor        float64
	Clusters          int64
	LongestCluster    int64
	ProbeDistribution []int64
}

// ChainStat - Statistics on the chain lengths of a separate chaining table
//   - Pairs is the number of key-value pairs stored
//   - Chains is the number of chains
//   - LongestChain is the length of the longest chain
//   - EmptyChains is the number of chains holding no pairs
type ChainStat struct {
	Pairs        int64
	Chains       int64
	LongestChain int64
	EmptyChains  int64
}
