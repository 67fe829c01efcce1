// Package jsstr implements the string primitive of a JavaScript engine.
//
// A String is immutable and reference counted, with UTF-16 semantics. Its
// content is stored as ASCII bytes when every unit is below 0x80 and as
// UTF-16 code units otherwise. Common literals live in a process-wide table
// of well-known strings and are referenced by index without allocating.
//
// Views borrow content from Go text, UTF-16 units or a String, and are the
// input of every construction and comparison routine.
package jsstr
