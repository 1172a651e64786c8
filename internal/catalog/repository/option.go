package repository

// ListOptions holds the parameters for fetching a catalog snapshot.
type ListOptions struct {
	Token   string // caller bearer token; empty falls back to the service identity
	NoCache bool   // skip the snapshot cache and refetch
}
