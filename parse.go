// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package esoparser

import (
	"bytes"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/esoparser/codec"
	"github.com/KirkDiggler/esoparser/event"
)

// unguardedMargin is the minimum readable-but-unused capacity past a
// buffer's last line required to use the unguarded tokenizer, matching
// the widest SWAR stride token.find uses.
const unguardedMargin = 32

// ParseOne decodes a single log line (without its trailing newline)
// into an Event.
func ParseOne(line []byte) (event.Event, error) {
	d := codec.NewDecoder(line)
	var ev event.Event
	if err := ev.Decode(d); err != nil {
		return event.Event{}, err
	}
	if err := d.Finish(); err != nil {
		return event.Event{}, err
	}
	return ev, nil
}

// ParseMany decodes every line of buf, splitting on '\n' and trimming a
// trailing '\r'. It always uses the bounds-checked tokenizer, so it
// accepts any buffer.
func ParseMany(buf []byte) ([]event.Event, error) {
	return parseLines(buf, ParseOne)
}

// ParseManyFast decodes every line of buf using the unguarded
// tokenizer. The caller must guarantee cap(buf) >= len(buf)+32 with
// arbitrary bytes in that padding; see token.NewUnguardedReader. Use
// ParseMany if that cannot be guaranteed.
func ParseManyFast(buf []byte) ([]event.Event, error) {
	return parseLines(buf, parseOneUnguarded)
}

func parseOneUnguarded(line []byte) (event.Event, error) {
	d := codec.NewUnguardedDecoder(line)
	var ev event.Event
	if err := ev.Decode(d); err != nil {
		return event.Event{}, err
	}
	if err := d.Finish(); err != nil {
		return event.Event{}, err
	}
	return ev, nil
}

func parseLines(buf []byte, parseLine func([]byte) (event.Event, error)) ([]event.Event, error) {
	lines := splitLines(buf)
	out := make([]event.Event, 0, len(lines))
	for _, line := range lines {
		ev, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func splitLines(buf []byte) [][]byte {
	var lines [][]byte
	for len(buf) > 0 {
		i := bytes.IndexByte(buf, '\n')
		var line []byte
		if i < 0 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:i], buf[i+1:]
		}
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseManyParallel decodes every line of buf across multiple
// goroutines, preserving input order in the returned slice. It chooses
// the unguarded tokenizer automatically for every line fully inside
// buf's unguarded-safe region and falls back to the bounds-checked one
// for lines running into the final unguardedMargin bytes, mirroring the
// guarded/unguarded split the sequential parsers leave to the caller.
//
// workers <= 0 defaults to runtime.GOMAXPROCS(0).
func ParseManyParallel(buf []byte, workers int) ([]event.Event, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	lines := splitLines(buf)
	out := make([]event.Event, len(lines))
	if len(lines) == 0 {
		return out, nil
	}

	safeEnd := len(buf) - unguardedMargin

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			parse := ParseOne
			if lineEndOffset(buf, line) <= safeEnd {
				parse = parseOneUnguarded
			}
			ev, err := parse(line)
			if err != nil {
				return err
			}
			out[i] = ev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// lineEndOffset returns line's end offset within buf's backing array,
// used to decide whether enough unguarded read-ahead margin remains.
func lineEndOffset(buf, line []byte) int {
	return cap(buf[:0]) - cap(line[len(line):])
}

// Dump serializes an Event back to its single-line wire form, without a
// trailing newline.
func Dump(ev event.Event) []byte {
	e := codec.NewEncoder()
	ev.Encode(e)
	return e.Finish()
}
