package ports

// StampStore persists the configure fingerprint of each cmake step between
// invocations. Store failures must never fail a build.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StampStore interface {
	// Get returns the last recorded fingerprint for a step.
	Get(step string) (string, bool)

	// Put records the fingerprint for a step and persists the store.
	Put(step, fingerprint string) error
}
