package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/customerio/lz4p"
	"github.com/customerio/lz4p/blocks"
	"github.com/customerio/lz4p/sink"
)

func handleDecode(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		cli.ShowAppHelp(ctx)
		return ExitCode{BadArgs, fmt.Sprintf("expected 2 arguments, got %d", ctx.NArg())}
	}

	cfg, err := configFromContext(ctx)
	if err != nil {
		return ExitCode{BadArgs, err.Error()}
	}

	inPath, outPath := ctx.Args().Get(0), ctx.Args().Get(1)

	in, err := openInput(inPath)
	if err != nil {
		return ExitCode{OpenInput, fmt.Sprintf("open input: %v", err)}
	}

	defer in.Close()

	out, err := openOutput(outPath)
	if err != nil {
		return ExitCode{OpenOutput, fmt.Sprintf("open output: %v", err)}
	}

	defer out.Close()

	var d *lz4p.Decoder

	if cfg.stream || inPath == "-" {
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		refiller := blocks.NewFastRefiller(sigCtx, in, blocks.DefaultChunkSize)
		defer refiller.Close()

		d = lz4p.NewDecoder(blocks.NewCursor(refiller))
	} else {
		buf, err := readInput(in, cfg.maxInput)
		if err != nil {
			return err
		}

		d = lz4p.NewDecoder(blocks.NewBufferedCursor(buf))
	}

	data, err := decode(d, cfg.maxOutput)
	if err != nil {
		return err
	}

	written, err := sink.Write(out, cfg.format, data)
	if err != nil {
		return ExitCode{OpenOutput, fmt.Sprintf("write output: %v", err)}
	}

	if err := out.Close(); err != nil {
		return ExitCode{OpenOutput, fmt.Sprintf("close output: %v", err)}
	}

	log.Infof(
		"decoded %d blocks into %s (%s written as %s)",
		d.Blocks,
		humanize.IBytes(uint64(len(data))),
		humanize.IBytes(uint64(written)),
		cfg.format,
	)

	return nil
}

// readInput loads the whole input file, refusing anything above limit.
func readInput(in *os.File, limit uint64) ([]byte, error) {
	info, err := in.Stat()
	if err != nil {
		return nil, ExitCode{StatInput, fmt.Sprintf("stat input: %v", err)}
	}

	size := info.Size()
	if size < 0 || uint64(size) > limit {
		return nil, ExitCode{
			InputTooLarge,
			fmt.Sprintf("input is %s, limit is %s", humanize.IBytes(uint64(size)), humanize.IBytes(limit)),
		}
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(in, buf); err != nil {
		return nil, ExitCode{ShortRead, fmt.Sprintf("read input: %v", err)}
	}

	return buf, nil
}

func decode(d *lz4p.Decoder, limit uint64) ([]byte, error) {
	h, err := d.Header()
	if err != nil {
		return nil, decodeExitCode(err)
	}

	log.Debugf(
		"header: original %d, compressed %d, block size %d, %d blocks",
		h.OriginalSize, h.CompressedSize, h.BlockSize, h.BlockCount,
	)

	if uint64(h.OriginalSize) > limit {
		return nil, ExitCode{
			OutputTooLarge,
			fmt.Sprintf("output would be %s, limit is %s", humanize.IBytes(uint64(h.OriginalSize)), humanize.IBytes(limit)),
		}
	}

	data, err := d.Decompress()
	if err != nil {
		return nil, decodeExitCode(err)
	}

	return data, nil
}

func decodeExitCode(err error) ExitCode {
	code := BlockDecode

	switch lz4p.KindOf(err) {
	case lz4p.MalformedHeader:
		code = MalformedHeader
	case lz4p.TruncatedInput, lz4p.InputOverrun:
		code = ShortRead
	}

	return ExitCode{code, fmt.Sprintf("decode: %v", err)}
}

func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}

	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}
