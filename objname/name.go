package objname

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Name is the fully-qualified name of a schema object: a module
// (namespace) plus a local component. For referenced objects, the local
// component is produced by [Specialized] and embeds the referrer's own
// name plus any disambiguating qualifiers.
//
// Name is a comparable value type; use == for identity comparisons, or
// [Name.String] for display.
type Name struct {
	module string
	local  string
}

// NewName creates a Name from a module and a local component verbatim.
// Most callers should use [Specialized] to build a referenced object's
// name instead of calling this directly.
func NewName(module, local string) Name {
	return Name{module: module, local: local}
}

// ShortName creates an unqualified Name with no module (a bare short
// name, as written by the user before it is placed in a referrer).
func ShortName(short string) Name {
	return Name{local: short}
}

// Module returns the namespace component.
func (n Name) Module() string { return n.module }

// Local returns the local (module-relative) component.
func (n Name) Local() string { return n.local }

// IsZero reports whether n is the zero Name.
func (n Name) IsZero() bool { return n.module == "" && n.local == "" }

// String returns "module::local", or just "local" if module is empty.
func (n Name) String() string {
	if n.module == "" {
		return n.local
	}
	return n.module + "::" + n.local
}

const qualSep = "@"
const partSep = "/"

// Specialized derives the fully-qualified name of a referenced object
// from its short name, the fully-qualified name of its referrer, and an
// optional tuple of disambiguating qualifiers.
//
// The result is placed in the referrer's module and is deterministic
// from (short name, referrer FQN, quals).
func Specialized(base string, referrer Name, quals ...string) Name {
	local := base + qualSep + mangle(referrer.String())
	if len(quals) > 0 {
		local += partSep + strings.Join(quals, partSep)
	}
	return Name{module: referrer.module, local: local}
}

// mangle turns an arbitrary fully-qualified name into a token safe to
// embed inside another name's local component.
func mangle(s string) string {
	return strings.NewReplacer("::", "|", " ", "_").Replace(s)
}

// IsQualified reports whether name was produced by [Specialized] (i.e.
// it names a referenced object scoped to a referrer) as opposed to a
// bare top-level name.
func IsQualified(name Name) bool {
	return strings.Contains(name.local, qualSep)
}

// ShortNameFromFullName returns the short name a user would have
// written for a (possibly specialized) Name. It is the left inverse of
// [Specialized]: ShortNameFromFullName(Specialized(s, r, q...)) == s.
func ShortNameFromFullName(name Name) string {
	if idx := strings.IndexByte(name.local, qualSep[0]); idx >= 0 {
		return name.local[:idx]
	}
	return name.local
}

// QualsFromFullName recovers the qualifier tuple embedded in a
// specialized Name, or nil if name is unqualified or carries no quals.
func QualsFromFullName(name Name) []string {
	idx := strings.IndexByte(name.local, qualSep[0])
	if idx < 0 {
		return nil
	}
	rest := name.local[idx+1:]
	parts := strings.Split(rest, partSep)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// ClassnameFromName reconstructs a referenced object's FQN under a
// different referrer, reusing the object's short name and the supplied
// qualifiers (typically the object's own [QualsFromFullName], unless
// the caller's class never preserves quals across referrers — which
// quals to pass is a per-class decision).
func ClassnameFromName(name Name, referrer Name, quals ...string) Name {
	base := ShortNameFromFullName(name)
	return Specialized(base, referrer, quals...)
}

// NameQualFromExprs derives a stable, collision-resistant qualifier from
// the concatenation of one or more defining expressions (e.g. the source
// text of a computed constraint). The digest only has to be
// deterministic and collision-resistant; sha1 is plenty for a
// disambiguation tag that never leaves the schema.
func NameQualFromExprs(exprs ...string) string {
	h := sha1.New()
	for _, e := range exprs {
		h.Write([]byte(e))
	}
	return hex.EncodeToString(h.Sum(nil))
}
