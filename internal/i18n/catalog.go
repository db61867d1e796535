package i18n

var english = map[string]string{
	"copying.header":       "Copying:",
	"copying.line":         "Copy %s → %s",
	"renamed.header":       "Renamed to avoid collisions:",
	"renamed.line":         "%s → %s",
	"overwrite.header":     "Overwriting:",
	"overwrite.prompt":     "Overwrite %d existing files? [y/N]: ",
	"dryrun.notice":        "Dry run - no files were copied.",
	"summary.success":      "Copied %d of %d files.",
	"summary.failures":     "Copied %d of %d files, %d failed:",
	"summary.failure.line": "- %s: %s",
	"summary.renamed":      "Renamed %d files to avoid collisions.",
	"summary.overwritten":  "Overwrote %d existing files.",
	"scan.none":            "no files matched the requested extensions",
	"scan.found":           "Found %d files in %d directories.",
}

var german = map[string]string{
	"copying.header":       "Kopiere:",
	"copying.line":         "Kopiere %s → %s",
	"renamed.header":       "Umbenannt wegen Namenskollision:",
	"renamed.line":         "%s → %s",
	"overwrite.header":     "Überschreibe:",
	"overwrite.prompt":     "%d vorhandene Dateien überschreiben? [j/N]: ",
	"dryrun.notice":        "Probelauf - es wurden keine Dateien kopiert.",
	"summary.success":      "%d von %d Dateien kopiert.",
	"summary.failures":     "%d von %d Dateien kopiert, %d fehlgeschlagen:",
	"summary.failure.line": "- %s: %s",
	"summary.renamed":      "%d Dateien wegen Kollision umbenannt.",
	"summary.overwritten":  "%d vorhandene Dateien überschrieben.",
	"scan.none":            "keine Dateien entsprachen den gewählten Endungen",
	"scan.found":           "%d Dateien in %d Verzeichnissen gefunden.",
}
