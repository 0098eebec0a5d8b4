package generate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cssel/catalog"
	"cssel/common"
	"cssel/config"
	"cssel/state"
)

// buildOutputPath returns constructed output file path/name based on various
// input parameters. It uses either default naming scheme or user-defined
// template and takes into account whether to preserve source directory
// structure on the output. It cleans up path and if requested transliterates
// it
func buildOutputPath(b *catalog.Build, src, dst string, format common.OutputFmt, env *state.LocalEnv) string {
	outDir := makeOutputDir(src, dst, env)
	defaultFile := makeDefaultFileName(src, format, env)

	if env.Cfg.Generator.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(b, src, format, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}

	return makeFullPath(outDir, expandedName, format, env)
}

func makeOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func makeDefaultFileName(src string, format common.OutputFmt, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Generator.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + format.Ext()
}

func expandOutputNameTemplate(b *catalog.Build, src string, format common.OutputFmt, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(b, src, config.OutputNameTemplateFieldName, env.Cfg.Generator.OutputNameTemplate, format)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(expandedName)
}

// makeFullPath takes an expanded template name (which may contain path
// separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func makeFullPath(outDir, expandedName string, format common.OutputFmt, env *state.LocalEnv) string {
	outExt := format.Ext()
	pathSegments := splitPathSegments(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + outExt
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitPathSegments(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Generator.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
