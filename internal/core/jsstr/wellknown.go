package jsstr

import (
	"iter"
	"sync"
	"sync/atomic"

	"go.trai.ch/zerr"
)

// builtinWellKnown lists the strings every process knows without allocating.
// Index 0 must stay the empty string: the zero String refers to it.
var builtinWellKnown = []string{
	"",
	// Property keys.
	"length", "prototype", "constructor", "name", "message", "stack", "cause",
	"value", "writable", "enumerable", "configurable", "get", "set",
	"arguments", "caller", "callee", "done", "next", "return", "throw",
	"index", "input", "groups", "indices", "lastIndex", "raw", "source", "flags",
	"global", "ignoreCase", "multiline", "sticky", "unicode", "dotAll",
	"then", "catch", "finally", "resolve", "reject", "errors",
	"__proto__", "toString", "valueOf", "toLocaleString", "toJSON",
	"hasOwnProperty", "isPrototypeOf", "propertyIsEnumerable",
	// Type names and typeof results.
	"undefined", "null", "boolean", "number", "bigint", "string", "symbol",
	"object", "function",
	"Object", "Function", "Array", "String", "Number", "Boolean", "BigInt",
	"Symbol", "Date", "RegExp", "Map", "Set", "WeakMap", "WeakSet", "WeakRef",
	"Promise", "Proxy", "Reflect", "JSON", "Math", "Intl", "ArrayBuffer",
	"SharedArrayBuffer", "DataView", "Atomics", "globalThis",
	"Error", "EvalError", "RangeError", "ReferenceError", "SyntaxError",
	"TypeError", "URIError", "AggregateError",
	// Literals and number renderings.
	"true", "false", "NaN", "Infinity", "-Infinity",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "-0",
	// Common method names.
	"push", "pop", "shift", "unshift", "slice", "splice", "concat", "join",
	"indexOf", "lastIndexOf", "includes", "map", "filter", "reduce", "forEach",
	"keys", "values", "entries", "has", "add", "delete", "clear", "size",
	"apply", "call", "bind", "charAt", "charCodeAt", "codePointAt", "split",
	"substring", "trim", "trimStart", "trimEnd", "padStart", "padEnd", "repeat",
	"startsWith", "endsWith", "toUpperCase", "toLowerCase", "normalize",
	"replace", "replaceAll", "match", "matchAll", "search", "at",
	"async", "await", "default", "let", "static", "yield", "of", "as", "from",
	"target", "meta", "use strict",
	" ", ",", ":", "[object Object]",
}

// Table is the process-wide set of interned ASCII strings. A published
// Table is never mutated: installing entries publishes a new Table whose
// entries keep the old indices.
type Table struct {
	entries []string
	index   map[string]uint32
}

var (
	table     atomic.Pointer[Table]
	sealed    atomic.Bool
	installMu sync.Mutex
)

func init() {
	table.Store(newTable(builtinWellKnown))
}

func newTable(entries []string) *Table {
	t := &Table{
		entries: entries,
		index:   make(map[string]uint32, len(entries)),
	}
	for i, e := range entries {
		if _, ok := t.index[e]; !ok {
			t.index[e] = uint32(i) //nolint:gosec // table size is bounded by startup configuration
		}
	}
	return t
}

// loadTable returns the current table without sealing it.
func loadTable() *Table {
	return table.Load()
}

// WellKnown returns the process-wide table. After the first call, the
// table is sealed and InstallWellKnown only accepts entries already present.
func WellKnown() *Table {
	sealed.Store(true)
	return table.Load()
}

// InstallWellKnown adds ASCII entries to the process-wide table. It must run
// at startup, before any string is constructed or looked up.
func InstallWellKnown(extra ...string) error {
	for _, e := range extra {
		if !isASCII(e) {
			return zerr.With(zerr.Wrap(ErrNonASCIIWellKnown, "cannot install well-known string"), "entry", e)
		}
	}

	installMu.Lock()
	defer installMu.Unlock()

	current := table.Load()
	var missing []string
	seen := make(map[string]bool, len(extra))
	for _, e := range extra {
		if _, ok := current.index[e]; ok || seen[e] {
			continue
		}
		seen[e] = true
		missing = append(missing, e)
	}
	if len(missing) == 0 {
		return nil
	}
	if sealed.Load() {
		return zerr.With(zerr.Wrap(ErrTableSealed, "cannot install well-known strings"), "missing", missing)
	}

	entries := make([]string, 0, len(current.entries)+len(missing))
	entries = append(entries, current.entries...)
	entries = append(entries, missing...)
	table.Store(newTable(entries))
	return nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) get(index uint32) (string, bool) {
	if int(index) >= len(t.entries) {
		return "", false
	}
	return t.entries[index], true
}

// Lookup returns the interned String for text, if there is one.
func (t *Table) Lookup(text string) (String, bool) {
	i, ok := t.index[text]
	if !ok {
		return String{}, false
	}
	return String{r: staticRef(i)}, true
}

// Contains reports whether text is interned.
func (t *Table) Contains(text string) bool {
	_, ok := t.index[text]
	return ok
}

// All yields every entry with its index, in index order.
func (t *Table) All() iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		for i, e := range t.entries {
			if !yield(uint32(i), e) { //nolint:gosec // bounded as in newTable
				return
			}
		}
	}
}
