// Command pdfocr2word converts a PDF into a Word (.docx) document.
//
// Usage:
//
//	pdfocr2word [flags] input.pdf output[.docx]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	pdfocr2word "github.com/Excalibur9527/pdfOcr2Word"
	"github.com/Excalibur9527/pdfOcr2Word/config"
	"github.com/Excalibur9527/pdfOcr2Word/ocr/paddle"
	"github.com/Excalibur9527/pdfOcr2Word/ocr/vision"
	"github.com/Excalibur9527/pdfOcr2Word/progress"
)

// stringList collects repeatable flag values.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		mode        = flag.String("mode", "", "extraction mode: ocr, text, or mac")
		engine      = flag.String("engine", "", "recognition engine for ocr mode: tesseract or paddle")
		lang        = flag.String("lang", "", "recognition languages, comma separated")
		dpi         = flag.Int("dpi", 0, "rasterization resolution")
		workers     = flag.Int("workers", -1, "concurrent recognition workers (0 = unbounded)")
		fontName    = flag.String("font-name", "", "output document font")
		fontSize    = flag.Int("font-size", 0, "output document font size in points")
		noFormat    = flag.Bool("no-format", false, "skip paragraph reflow, keep raw extracted lines")
		popplerPath = flag.String("poppler-path", "", "directory containing poppler's pdftoppm")
		configPath  = flag.String("config", "", "path to a YAML config file")
	)
	var removeTokens stringList
	flag.Var(&removeTokens, "remove-token", "literal token to strip from extracted text (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input.pdf output[.docx]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	cfg, err := config.Load(*configPath)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			color.Red("config: %v", e)
		}
		os.Exit(1)
	}
	applyFlags(cfg, *mode, *engine, *lang, *dpi, *workers, *fontName, *fontSize, *noFormat, *popplerPath, removeTokens)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := run(ctx, cfg, inputPath, outputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr)
		color.Red("%v", err)
		os.Exit(1)
	}
	color.Green("✓ Wrote %s", out)
}

// applyFlags lays explicitly-set flag values over the loaded config.
func applyFlags(cfg *config.Config, mode, engine, lang string, dpi, workers int, fontName string, fontSize int, noFormat bool, popplerPath string, removeTokens []string) {
	if mode != "" {
		cfg.Conversion.Mode = mode
	}
	if engine != "" {
		cfg.Conversion.Engine = engine
	}
	if lang != "" {
		cfg.Conversion.Language = strings.Split(lang, ",")
	}
	if dpi > 0 {
		cfg.Conversion.DPI = dpi
	}
	if workers >= 0 {
		cfg.Conversion.Workers = workers
	}
	if fontName != "" {
		cfg.Output.FontName = fontName
	}
	if fontSize > 0 {
		cfg.Output.FontSize = fontSize
	}
	if noFormat {
		cfg.Conversion.NoFormat = true
	}
	if popplerPath != "" {
		cfg.Tools.PopplerPath = popplerPath
	}
	cfg.Cleanup.RemoveTokens = append(cfg.Cleanup.RemoveTokens, removeTokens...)
}

func run(ctx context.Context, cfg *config.Config, inputPath, outputPath string) (string, error) {
	color.Cyan("Converting %s (%s mode)", inputPath, cfg.Conversion.Mode)

	conv := pdfocr2word.Open(inputPath).
		Mode(pdfocr2word.Mode(cfg.Conversion.Mode)).
		Engine(pdfocr2word.EngineName(cfg.Conversion.Engine)).
		DPI(cfg.Conversion.DPI).
		Workers(cfg.Conversion.Workers).
		Font(cfg.Output.FontName, cfg.Output.FontSize).
		PopplerPath(cfg.Tools.PopplerPath)

	if len(cfg.Conversion.Language) > 0 {
		conv = conv.Language(cfg.Conversion.Language...)
	}
	if len(cfg.Cleanup.RemoveTokens) > 0 {
		conv = conv.RemoveTokens(cfg.Cleanup.RemoveTokens...)
	}
	if cfg.Conversion.NoFormat {
		conv = conv.NoFormat()
	}
	if cfg.Conversion.Mode == "ocr" && cfg.Conversion.Engine == "paddle" && cfg.Tools.PaddleBin != "" {
		conv = conv.WithOCREngine(&paddle.Engine{Bin: cfg.Tools.PaddleBin})
	}
	if cfg.Conversion.Mode == "mac" && cfg.Tools.VisionBin != "" {
		conv = conv.WithOCREngine(&vision.Engine{Bin: cfg.Tools.VisionBin})
	}

	tracker := progress.NewTracker()
	var bar *progressbar.ProgressBar
	conv = conv.WithProgress(func(done, total int) {
		if done == 0 {
			tracker.Start(total)
			bar = pageBar(total)
			return
		}
		tracker.Advance()
		if bar != nil {
			bar.Describe(color.BlueString("Recognizing pages (%.1f pages/s)", tracker.Rate()))
			_ = bar.Set(done)
		}
	})

	out, err := conv.Convert(ctx, outputPath)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	return out, err
}

func pageBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString("Recognizing pages")),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(os.Stderr),
	)
}
