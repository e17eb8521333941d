// Package config provides the workspace-file loader for cubuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cubuild/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the workspace file looked up at the repo root.
const DefaultFilename = "cubuild.yaml"

// FileLoader reads the optional cubuild.yaml workspace file.
type FileLoader struct {
	Filename string
}

// NewFileLoader creates a FileLoader with the default filename.
func NewFileLoader() *FileLoader {
	return &FileLoader{Filename: DefaultFilename}
}

// Workspacefile represents the structure of cubuild.yaml.
type Workspacefile struct {
	Prefix         string             `yaml:"prefix"`
	Parallel       int                `yaml:"parallel"`
	ExtraCMakeArgs []string           `yaml:"extraCmakeArgs"`
	Steps          map[string]StepDTO `yaml:"steps"`
}

// StepDTO is one per-step override in the workspace file.
type StepDTO struct {
	Dir       string   `yaml:"dir"`
	ExtraArgs []string `yaml:"extraArgs"`
}

// Load reads the workspace file from the given repository root. A missing
// file is not an error; it yields settings with only RepoRoot set.
func (l *FileLoader) Load(repoRoot string) (domain.Settings, error) {
	st := domain.Settings{RepoRoot: repoRoot}

	path := filepath.Join(repoRoot, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is rooted at the user's checkout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return domain.Settings{}, zerr.Wrap(err, "failed to read workspace file")
	}

	var wf Workspacefile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse workspace file")
	}

	st.InstallPrefix = wf.Prefix
	st.ParallelLevel = wf.Parallel
	st.ExtraCMakeArgs = wf.ExtraCMakeArgs

	known := make(map[domain.StepName]bool)
	for _, name := range domain.BuildStepNames() {
		known[name] = true
	}

	for name, dto := range wf.Steps {
		step := domain.StepName(name)
		if !known[step] {
			return domain.Settings{}, zerr.With(zerr.New("unknown step in workspace file"), "step", name)
		}
		if dto.Dir != "" {
			if st.BuildDirs == nil {
				st.BuildDirs = make(map[domain.StepName]string)
			}
			dir := dto.Dir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(repoRoot, dir)
			}
			st.BuildDirs[step] = dir
		}
		if len(dto.ExtraArgs) > 0 {
			if st.StepExtraArgs == nil {
				st.StepExtraArgs = make(map[domain.StepName][]string)
			}
			st.StepExtraArgs[step] = dto.ExtraArgs
		}
	}

	return st, nil
}
