package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nguyentantai21042004/slide-narrator/internal/httpapi"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
	"github.com/nguyentantai21042004/slide-narrator/internal/pipeline"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
	"github.com/nguyentantai21042004/slide-narrator/internal/watcher"
)

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "generate":
		return a.generate(ctx, args)
	case "resume":
		return a.resume(ctx, args)
	case "list":
		return a.list(args)
	case "show":
		return a.show(args)
	case "export":
		return a.export(args)
	case "serve":
		return a.serve(ctx)
	case "watch":
		return a.watch(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", models.ErrInvalidInput, cmd)
	}
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	file := fs.String("file", "", "slide deck (PDF)")
	start := fs.Int("start", 1, "first page, 1-indexed")
	end := fs.Int("end", math.MaxInt32, "last page, clamped to the page count")
	minutes := fs.Int("minutes", a.cfg.Lecture.DefaultMinutes, "total lecture minutes")
	pdfOut := fs.String("pdf", "", "also export to this PDF path")
	docxOut := fs.String("docx", "", "also export to this DOCX path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.openPipeline()
	if err != nil {
		return err
	}

	res, err := p.Generate(ctx, pipeline.Request{
		Path:    *file,
		Start:   *start,
		End:     *end,
		Minutes: *minutes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d scripts to %s\n", len(res.Scripts), res.RecordPath)
	return a.writeExports(res.Scripts, *pdfOut, *docxOut)
}

func (a *app) resume(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resume", flag.ContinueOnError)
	id := fs.String("id", "", "checkpoint id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.openPipeline()
	if err != nil {
		return err
	}

	if *id == "" {
		runs, err := a.checkpoints.List()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No interrupted runs.")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  pages %d-%d  %d/%d slides  %s\n",
				r.ID, r.Meta.SourceName, r.Meta.StartPage, r.Meta.EndPage,
				len(r.Scripts), len(r.Pages), r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	res, err := p.Resume(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %d scripts to %s\n", len(res.Scripts), res.RecordPath)
	return nil
}

func (a *app) list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	year := fs.Int("year", 0, "filter by year")
	month := fs.Int("month", 0, "filter by month (needs -year)")
	day := fs.Int("day", 0, "filter by day (needs -year)")
	years := fs.Bool("years", false, "list the years that have runs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	names, err := a.store.List()
	if err != nil {
		return err
	}

	if *years {
		for _, y := range session.Years(names) {
			fmt.Println(y)
		}
		return nil
	}

	names = session.FilterByDate(names, *year, *month, *day)
	if len(names) == 0 {
		fmt.Printf("No runs in %s\n", a.store.Dir())
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func (a *app) show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	name := fs.String("name", "", "run file name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	record, err := a.store.Open(*name)
	if err != nil {
		return err
	}

	fmt.Printf("%s  (%s, pages %d-%d of %d, %d min)\n\n",
		record.SourceName, record.CreatedAt, record.StartPage, record.EndPage, record.TotalPages, record.TotalMinutes)
	for _, e := range record.Slides {
		fmt.Printf("== %s: %s ==\n%s\n\n", e.Label, e.Topic, e.Script)
	}
	return nil
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	name := fs.String("name", "", "saved run file name")
	file := fs.String("file", "", "external run file path")
	pdfOut := fs.String("pdf", "", "PDF output path")
	docxOut := fs.String("docx", "", "DOCX output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		record models.RunRecord
		err    error
	)
	switch {
	case *name != "":
		record, err = a.store.Open(*name)
	case *file != "":
		record, err = decodeFile(*file)
	default:
		return fmt.Errorf("%w: -name or -file is required", models.ErrInvalidInput)
	}
	if err != nil {
		return err
	}

	if *pdfOut == "" && *docxOut == "" {
		base := strings.TrimSuffix(filepath.Base(*name+*file), ".json")
		*pdfOut = filepath.Join(a.cfg.Paths.Exports, base+".pdf")
	}
	return a.writeExports(session.Load(record), *pdfOut, *docxOut)
}

func decodeFile(path string) (models.RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.RunRecord{}, err
	}
	defer f.Close()
	return session.Decode(f)
}

func (a *app) writeExports(scripts models.Scripts, pdfOut, docxOut string) error {
	if pdfOut != "" {
		data, err := a.exporter.PDF(scripts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(pdfOut, data, 0644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		fmt.Printf("Exported %s\n", pdfOut)
	}
	if docxOut != "" {
		if err := a.exporter.DOCX(scripts, docxOut); err != nil {
			return err
		}
		fmt.Printf("Exported %s\n", docxOut)
	}
	return nil
}

func (a *app) serve(ctx context.Context) error {
	p, err := a.openPipeline()
	if err != nil {
		return err
	}

	srv := httpapi.New(a.cfg.Server, &httpapi.Handler{
		Pipeline:    p,
		Store:       a.store,
		Session:     session.NewRunSession(),
		Exporter:    a.exporter,
		Logger:      a.log,
		Checkpoints: a.checkpoints,
	})

	errChan := make(chan error, 1)
	go func() { errChan <- srv.Listen(a.cfg.Server.Addr) }()

	a.log.Info(ctx, "HTTP API listening on %s", a.cfg.Server.Addr)

	select {
	case <-ctx.Done():
		a.log.Info(ctx, "Shutdown signal received")
		return srv.Shutdown()
	case err := <-errChan:
		return err
	}
}

func (a *app) watch(ctx context.Context) error {
	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "Slide Narrator inbox")
	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.log.Info(ctx, "Runs: %s", a.store.Dir())
	a.log.Info(ctx, "Exports: %s", a.cfg.Paths.Exports)
	a.log.Info(ctx, "Default duration: %d min", a.cfg.Lecture.DefaultMinutes)
	a.log.Info(ctx, "Max concurrent runs: %d", a.cfg.Performance.MaxConcurrent)
	a.log.Info(ctx, "Press Ctrl+C to stop")

	p, err := a.openPipeline()
	if err != nil {
		return err
	}

	w, err := watcher.New(a.cfg.Paths.Input, p.Process, a.log, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info(ctx, "Slide Narrator stopped")
	return nil
}
