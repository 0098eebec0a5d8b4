// Package generate drives the build pipeline: it resolves input
// sources, loads and compiles selector catalogs and emits results in
// the requested output format.
package generate

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/archive"
	"cssel/catalog"
	"cssel/common"
	"cssel/misc"
	"cssel/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line overwrites configuration
	name := cmd.String("to")
	if len(name) == 0 {
		name = env.Cfg.Generator.Format
	}
	format, err := common.ParseOutputFmt(name)
	if err != nil {
		log.Warn("Unknown output format requested, switching to css", zap.Error(err))
		format = common.OutputFmtCSS
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

// process handles the core build logic independently of CLI framework. It
// determines the input type (directory, archive, or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, format common.OutputFmt, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, format, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		bundle, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if bundle {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, tail, "", dst, format, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		cat, enc, err := isCatalogFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if cat && len(tail) == 0 {
			// we have catalog, it cannot have tail
			// encoding will be handled properly by processCatalog
			if file, err := os.Open(head); err != nil {
				log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
			} else {
				defer file.Close()
				if err := processCatalog(ctx, selectReader(file, enc), filepath.Base(head), dst, format, log); err != nil {
					log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
				}
			}
			break
		}
		return fmt.Errorf("input was not recognized as selector catalog (%s)", head)

	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding catalog files and processes them.
func processDir(ctx context.Context, dir, dst string, format common.OutputFmt, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		bundle, err := isArchiveFile(path)
		if err != nil {
			// checking format - but cannot open target file
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if bundle {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, format, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		cat, enc, err := isCatalogFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !cat {
			log.Debug("Skipping file, not recognized as catalog or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processCatalog(ctx, selectReader(file, enc), src, dst, format, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all files inside archive, finds catalogs under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, format common.OutputFmt, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	err = archive.Walk(path, pathIn, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		cat, enc, err := isCatalogInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !cat {
			log.Debug("Skipping file, not recognized as catalog", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := processCatalog(ctx, selectReader(r, enc), filepath.Join(pathOut, f.FileHeader.Name), dst, format, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processCatalog processes single catalog. "src" is part of the source path
// (always including file name) relative to the original path. When actual file
// was specified it will be just base file name without a path. When looking
// inside archive or directory it will be relative path inside archive or
// directory (including base file name). "dst" is the destination directory
// where the built file should be written.
func processCatalog(ctx context.Context, r io.Reader, src string, dst string, format common.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Build starting", zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: report storage panics on logic errors and we do not want to
		// stop when multiple catalogs are being processed.
		if r := recover(); r != nil {
			log.Error("Build ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("build panic: %v", r)
		} else {
			log.Info("Build completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("catalog_id", refID))
		}
	}(time.Now())

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read catalog source (%s): %w", src, err)
	}
	doc, err := catalog.Load(data, log)
	if err != nil {
		return fmt.Errorf("unable to parse catalog source (%s): %w", src, err)
	}
	build, err := doc.Compile(log)
	if err != nil {
		return err
	}

	refID = build.ID

	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(build, src, dst, format, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	// Generate output in the requested format
	if err := emit(build, outputName, format, env); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	// Store build result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}

	return nil
}

// emit writes the compiled build to the output file in the requested format.
func emit(b *catalog.Build, output string, format common.OutputFmt, env *state.LocalEnv) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case common.OutputFmtCSS:
		var header string
		if env.Cfg.Generator.HeaderComment {
			header = stylesheetHeader(b)
		}
		_, err = b.Stylesheet(header, env.Cfg.Generator.ScaffoldRules).WriteTo(f)
	case common.OutputFmtXML:
		err = b.WriteXML(f)
	case common.OutputFmtText:
		_, err = io.WriteString(f, b.String())
	default:
		// this should never happen
		panic("unsupported format requested")
	}
	return err
}

// stylesheetHeader builds the comment emitted at the top of generated
// stylesheets.
func stylesheetHeader(b *catalog.Build) string {
	if b.Name != "" {
		return fmt.Sprintf("Generated by %s %s from catalog %q (%s)", misc.GetAppName(), misc.GetVersion(), b.Name, b.ID)
	}
	return fmt.Sprintf("Generated by %s %s from catalog %s", misc.GetAppName(), misc.GetVersion(), b.ID)
}
