// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record:
// a colored level name, the message, and the attributes in
// key=value form.
type Handler struct {
	opts   slog.HandlerOptions
	output *termenv.Output
	attrs  []slog.Attr
	group  string

	mu *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w at the given level.
// Colors are only used when w is a terminal that supports them.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		opts:   slog.HandlerOptions{Level: level},
		output: termenv.NewOutput(w),
		mu:     &sync.Mutex{},
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, a)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}

func (h *Handler) writeAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", h.output.String(key).Faint(), a.Value.Resolve())
}

func (h *Handler) levelString(level slog.Level) string {
	s := h.output.String(level.String())
	switch {
	case level >= slog.LevelError:
		return s.Foreground(h.output.Color("1")).Bold().String()
	case level >= slog.LevelWarn:
		return s.Foreground(h.output.Color("3")).Bold().String()
	case level >= slog.LevelInfo:
		return s.Foreground(h.output.Color("4")).String()
	default:
		return s.Faint().String()
	}
}

// ErrorColor returns the given string colored as an error
// for the standard output terminal.
func ErrorColor(s string) string {
	o := termenv.DefaultOutput()
	return o.String(s).Foreground(o.Color("1")).String()
}

// SuccessColor returns the given string colored as a success message
// for the standard output terminal.
func SuccessColor(s string) string {
	o := termenv.DefaultOutput()
	return o.String(s).Foreground(o.Color("2")).String()
}

// CmdColor returns the given string colored as a command or
// key name for the standard output terminal.
func CmdColor(s string) string {
	o := termenv.DefaultOutput()
	return o.String(s).Foreground(o.Color("5")).Bold().String()
}
