// Package objname derives and decomposes the fully-qualified names of
// referenced schema objects.
//
// Every referenced object has two names: a short name (what the user
// wrote, e.g. "l2") and a fully-qualified name derived deterministically
// from (short name, referrer name, optional qualifiers) via [Specialized].
// [ShortNameFromFullName] is its inverse for the short-name component;
// [QualsFromFullName] recovers the qualifier tuple.
//
// Qualifiers disambiguate names that would otherwise collide (e.g. two
// anonymous computed constraints on the same pointer); [NameQualFromExprs]
// derives a deterministic qualifier from the source text of a defining
// expression.
package objname
