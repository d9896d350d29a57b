// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging configures the process-wide slog logger.

Init is called once from main after flags are parsed:

	logging.Init(cfg.LogLevel, cfg.LogFormat)

Level is one of debug, info, warn or error and defaults to info. Format is
text or json and defaults to text. Output goes to stdout. New builds the
same logger on any writer for tests.
*/
package logging
