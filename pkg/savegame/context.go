package savegame

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/codec"
)

// decoder is the per-call decode context. The first error sticks: once err is
// set every read returns a zero value, and callers check err at record
// boundaries.
type decoder struct {
	r      *codec.Reader
	format Format
	lookup blueprint.Lookup
	path   []string
	err    error
}

func (d *decoder) enter(name string, args ...any) {
	if len(args) > 0 {
		name = fmt.Sprintf(name, args...)
	}
	d.path = append(d.path, name)
}

func (d *decoder) leave() {
	d.path = d.path[:len(d.path)-1]
}

func (d *decoder) where() string {
	if len(d.path) == 0 {
		return "root"
	}
	return strings.Join(d.path, ".")
}

// fail records err against a field whose value started at offset
func (d *decoder) fail(field string, offset int64, value int, err error) {
	if d.err != nil {
		return
	}
	d.err = &DecodeError{Path: d.where(), Field: field, Offset: offset, Value: int64(value), Err: err}
}

func (d *decoder) failRead(err error) {
	if d.err != nil {
		return
	}
	var fe *codec.FieldError
	if errors.As(err, &fe) {
		d.err = &DecodeError{Path: d.where(), Field: fe.Field, Offset: fe.Offset, Value: fe.Value, Err: fe.Err}
		return
	}
	d.err = &DecodeError{Path: d.where(), Offset: d.r.Offset(), Err: err}
}

func (d *decoder) int(field string) int {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ReadInt(field)
	if err != nil {
		d.failRead(err)
	}
	return v
}

func (d *decoder) bool(field string) bool {
	if d.err != nil {
		return false
	}
	v, err := d.r.ReadBool(field)
	if err != nil {
		d.failRead(err)
	}
	return v
}

func (d *decoder) sentinel(field string) int {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ReadSentinelInt(field)
	if err != nil {
		d.failRead(err)
	}
	return v
}

func (d *decoder) str(field string) string {
	if d.err != nil {
		return ""
	}
	v, err := d.r.ReadString(field)
	if err != nil {
		d.failRead(err)
	}
	return v
}

// MaxListLength bounds every list length prefix. Larger counts come from a
// misaligned or corrupt stream and would otherwise size a huge allocation.
const MaxListLength = 1 << 16

// count reads a list length prefix, rejecting negative and oversized values
func (d *decoder) count(field string) int {
	start := d.r.Offset()
	n := d.int(field)
	if d.err == nil && (n < 0 || n > MaxListLength) {
		d.fail(field, start, n, ErrOutOfRange)
		return 0
	}
	return n
}

// tag reads an enumerated value and checks it with valid
func (d *decoder) tag(field string, valid func(int) bool) int {
	start := d.r.Offset()
	v := d.int(field)
	if d.err == nil && !valid(v) {
		d.fail(field, start, v, ErrUnknownTag)
	}
	return v
}

// ranged reads an int that must lie within [lo, hi]
func (d *decoder) ranged(field string, lo, hi int) int {
	start := d.r.Offset()
	v := d.int(field)
	if d.err == nil && (v < lo || v > hi) {
		d.fail(field, start, v, ErrOutOfRange)
	}
	return v
}

func (d *decoder) strings(field string) []string {
	n := d.count(field + " count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, d.str(field))
	}
	return out
}

func (d *decoder) ints(field string) []int {
	n := d.count(field + " count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, d.int(field))
	}
	return out
}

func (d *decoder) droneType(id string) DroneType {
	if d.err != nil {
		return ""
	}
	bp, err := d.lookup.Drone(id)
	if err != nil {
		d.fail("drone blueprint", d.r.Offset(), 0, fmt.Errorf("%w: drone %q: %w", ErrUnresolvedBlueprint, id, err))
		return ""
	}
	t := DroneType(bp.Type)
	if !t.valid() {
		d.fail("drone type", d.r.Offset(), 0, fmt.Errorf("%w: drone %q has type %q", ErrUnknownTag, id, bp.Type))
		return ""
	}
	return t
}

// encoder mirrors decoder for the write direction
type encoder struct {
	w      *codec.Writer
	format Format
	lookup blueprint.Lookup
	logger *slog.Logger
	path   []string
	err    error
}

func (e *encoder) enter(name string, args ...any) {
	if len(args) > 0 {
		name = fmt.Sprintf(name, args...)
	}
	e.path = append(e.path, name)
}

func (e *encoder) leave() {
	e.path = e.path[:len(e.path)-1]
}

func (e *encoder) where() string {
	if len(e.path) == 0 {
		return "root"
	}
	return strings.Join(e.path, ".")
}

func (e *encoder) fail(field string, value int, err error) {
	if e.err != nil {
		return
	}
	e.err = &EncodeError{Path: e.where(), Field: field, Offset: e.w.Offset(), Value: int64(value), Err: err}
}

func (e *encoder) failWrite(err error) {
	if e.err != nil {
		return
	}
	var fe *codec.FieldError
	if errors.As(err, &fe) {
		e.err = &EncodeError{Path: e.where(), Field: fe.Field, Offset: fe.Offset, Value: fe.Value, Err: fe.Err}
		return
	}
	e.err = &EncodeError{Path: e.where(), Offset: e.w.Offset(), Err: err}
}

func (e *encoder) int(field string, v int) {
	if e.err != nil {
		return
	}
	if err := e.w.WriteInt(field, v); err != nil {
		e.failWrite(err)
	}
}

func (e *encoder) bool(field string, v bool) {
	if e.err != nil {
		return
	}
	if err := e.w.WriteBool(field, v); err != nil {
		e.failWrite(err)
	}
}

func (e *encoder) sentinel(field string, v int) {
	if e.err != nil {
		return
	}
	if err := e.w.WriteSentinelInt(field, v); err != nil {
		e.failWrite(err)
	}
}

func (e *encoder) str(field string, v string) {
	if e.err != nil {
		return
	}
	if err := e.w.WriteString(field, v); err != nil {
		e.failWrite(err)
	}
}

func (e *encoder) tag(field string, v int, valid func(int) bool) {
	if e.err == nil && !valid(v) {
		e.fail(field, v, ErrUnknownTag)
		return
	}
	e.int(field, v)
}

func (e *encoder) ranged(field string, v, lo, hi int) {
	if e.err == nil && (v < lo || v > hi) {
		e.fail(field, v, ErrOutOfRange)
		return
	}
	e.int(field, v)
}

func (e *encoder) strings(field string, vs []string) {
	e.int(field+" count", len(vs))
	for _, v := range vs {
		e.str(field, v)
	}
}

func (e *encoder) ints(field string, vs []int) {
	e.int(field+" count", len(vs))
	for _, v := range vs {
		e.int(field, v)
	}
}

func (e *encoder) droneType(id string) DroneType {
	if e.err != nil {
		return ""
	}
	bp, err := e.lookup.Drone(id)
	if err != nil {
		e.fail("drone blueprint", 0, fmt.Errorf("%w: drone %q: %w", ErrUnresolvedBlueprint, id, err))
		return ""
	}
	t := DroneType(bp.Type)
	if !t.valid() {
		e.fail("drone type", 0, fmt.Errorf("%w: drone %q has type %q", ErrUnknownTag, id, bp.Type))
		return ""
	}
	return t
}
