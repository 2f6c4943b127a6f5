// Package config loads and watches the termwin configuration file.
//
// The configuration is a single TOML file, by default
// $XDG_CONFIG_HOME/termwin/config.toml:
//
//	[screen]
//	cursor = 1            # 0 invisible, 1 normal, 2 very visible
//	mouse = true          # enable mouse reporting
//	poll_interval = "5ms" # idle delay between run-loop iterations
//	focus_key = "tab"     # token that cycles focus; "none" disables it
//	double_click = "400ms"
//
//	[log]
//	level = "info"        # debug, info, warn, error
//	file = ""             # default $XDG_STATE_HOME/termwin/termwin.log
//
// A missing file yields the defaults. Unknown keys are rejected so typos
// surface as a *ParseError instead of being silently ignored.
//
// # Live Reload
//
// Watch observes the file with fsnotify and delivers every successfully
// parsed revision on a channel:
//
//	updates, err := config.Watch(ctx, path, logger)
//	if err != nil {
//	    return err
//	}
//	for cfg := range updates {
//	    apply(cfg)
//	}
package config
