package ledger

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
)

// Namespace scopes a family of records. Namespaces never contain the key separator.
type Namespace string

const (
	NamespaceProvider     Namespace = "provider"
	NamespaceSubmission   Namespace = "submission"
	NamespaceListing      Namespace = "listing"
	NamespaceGrant        Namespace = "grant"
	NamespaceProposal     Namespace = "proposal"
	NamespaceVote         Namespace = "vote"
	NamespaceTokenMint    Namespace = "token-mint"
	NamespaceTokenAccount Namespace = "token-account"
	NamespaceCounter      Namespace = "counter"
)

// Namespaces lists every namespace the ledger writes to.
var Namespaces = []Namespace{
	NamespaceProvider,
	NamespaceSubmission,
	NamespaceListing,
	NamespaceGrant,
	NamespaceProposal,
	NamespaceVote,
	NamespaceTokenMint,
	NamespaceTokenAccount,
	NamespaceCounter,
}

const keySeparator = "/"

// Key is a deterministic storage key.
type Key string

// DeriveKey builds the key of a record from its namespace and identifying components.
// Components are path-escaped, so a separator inside a component can never make
// two different (namespace, components) tuples produce the same key.
func DeriveKey(ns Namespace, components ...string) Key {
	var sb strings.Builder
	sb.WriteString(string(ns))
	for _, c := range components {
		sb.WriteString(keySeparator)
		sb.WriteString(url.PathEscape(c))
	}
	return Key(sb.String())
}

// Prefix returns the scan prefix matching every key derived from ns and the leading components.
func Prefix(ns Namespace, components ...string) Key {
	return DeriveKey(ns, components...) + keySeparator
}

// ParseNamespace validates s against the known namespaces.
func ParseNamespace(s string) (Namespace, error) {
	for _, ns := range Namespaces {
		if string(ns) == s {
			return ns, nil
		}
	}
	return "", errors.Wrapf(errs.InvalidArgument, "unknown namespace %q", s)
}

// Namespace returns the namespace the key was derived from.
func (k Key) Namespace() Namespace {
	ns, _, _ := strings.Cut(string(k), keySeparator)
	return Namespace(ns)
}

// Components returns the unescaped components of the key.
func (k Key) Components() ([]string, error) {
	parts := strings.Split(string(k), keySeparator)
	components := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		c, err := url.PathUnescape(part)
		if err != nil {
			return nil, errors.Wrapf(errs.InvalidArgument, "malformed key %q", string(k))
		}
		components = append(components, c)
	}
	return components, nil
}

func (k Key) HasPrefix(prefix Key) bool {
	return strings.HasPrefix(string(k), string(prefix))
}

func (k Key) Bytes() []byte {
	return []byte(k)
}

func (k Key) String() string {
	return string(k)
}
