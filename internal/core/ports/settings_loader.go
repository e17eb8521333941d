package ports

import "go.trai.ch/cubuild/internal/core/domain"

// SettingsLoader resolves the workspace settings for one invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the optional workspace file and the environment overrides
	// rooted at the given repository checkout.
	Load(repoRoot string) (domain.Settings, error)
}
