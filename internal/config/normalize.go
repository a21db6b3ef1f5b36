package config

import "strings"

// normalize expands path fields and canonicalizes string values so the rest of
// the program never re-trims or re-expands configuration data.
func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.WorkDir, &c.Paths.CacheDir, &c.Paths.LogDir} {
		expanded, err := ExpandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Transcriber.Command = strings.TrimSpace(c.Transcriber.Command)
	c.Transcriber.Model = strings.TrimSpace(c.Transcriber.Model)
	c.Transcriber.Language = strings.ToLower(strings.TrimSpace(c.Transcriber.Language))
	c.Output.DefaultName = strings.TrimSpace(c.Output.DefaultName)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
