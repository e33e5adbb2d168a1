package settings

import "context"

// SettingsRepository fetches settings documents by section id. A missing
// section document is reported via found=false, never as an error.
type SettingsRepository interface {
	GetSection(ctx context.Context, sectionID string, out interface{}) (found bool, err error)
	SetSection(ctx context.Context, sectionID string, payload interface{}) error
}
