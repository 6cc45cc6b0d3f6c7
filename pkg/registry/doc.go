// Package registry keeps the failure kinds a program defines.
//
// A Registry hands out kinds by name, returning the original kind when a name
// is defined again, and remembers every kind it produced so dispatch can
// reject catch targets it never issued. Name lookups fall back to host kinds
// (package kinds) when the registry has no entry of that name.
package registry
