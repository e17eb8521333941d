package ports

import "context"

// Cleaner owns filesystem cleanup. A missing directory, path, or manifest is
// never an error: "already clean" is a valid end state.
//
//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// Clean removes the contents of each directory, keeping the directories
	// themselves.
	Clean(ctx context.Context, dirs []string) error

	// Remove deletes the given files or directories outright.
	Remove(ctx context.Context, paths []string) error

	// Uninstall deletes every path listed in each cmake install manifest.
	Uninstall(ctx context.Context, manifests []string) error
}
