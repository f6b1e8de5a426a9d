package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ChangeFunc receives the reloaded configuration, or the error from
// decoding it, after the config file changes on disk.
type ChangeFunc func(cfg Config, err error, ev fsnotify.Event)

// Watch reloads v whenever its config file is written and hands the result
// to fn. It reports false when no config file is in use and there is
// nothing to watch.
func Watch(v *viper.Viper, fn ChangeFunc) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(ev fsnotify.Event) {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load(v)
		fn(cfg, err, ev)
	})
	v.WatchConfig()
	return true
}
