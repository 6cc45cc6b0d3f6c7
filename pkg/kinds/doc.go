// Package kinds models failure kinds and the failures raised with them.
//
// A Kind is a named node in a forest rooted at Root. Kinds are compared by
// identity, never by name, so two kinds that share a name in different
// registries stay distinct. A Failure is an error value carrying its Kind,
// a message and a trace captured when it was built.
//
// Errors that are not failures are mapped onto host kinds (EOF, Canceled,
// NotExist and so on) by Classify, which always yields exactly one kind.
package kinds
