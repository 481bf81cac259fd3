package core

import "fmt"

// FetchError indicates the repository source could not be reached
type FetchError struct {
	Operation string
	Login     string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s for %s failed: %v", e.Operation, e.Login, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ConfigWriteError indicates the projects document could not be written
type ConfigWriteError struct {
	Path string
	Err  error
}

func (e *ConfigWriteError) Error() string {
	return fmt.Sprintf("failed to write projects config %s: %v", e.Path, e.Err)
}

func (e *ConfigWriteError) Unwrap() error {
	return e.Err
}

// LogoError indicates one project's logo could not be written
type LogoError struct {
	Project string
	Path    string
	Err     error
}

func (e *LogoError) Error() string {
	return fmt.Sprintf("failed to write logo %s: %v", e.Path, e.Err)
}

func (e *LogoError) Unwrap() error {
	return e.Err
}

// Step names a pipeline stage whose failure is recovered from
type Step int

const (
	StepNone Step = iota
	StepLogos
	StepRender
)

func (s Step) String() string {
	switch s {
	case StepNone:
		return ""
	case StepLogos:
		return "write logos"
	case StepRender:
		return "render"
	}
	return ""
}
