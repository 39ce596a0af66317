package files

import (
	"path"
	"regexp"
	"strings"
)

// Two incompatible naming schemes relate a translated artifact to its
// source file:
//
//   - flat:  <epochMillis>_translated_<lang>_<baseNameWithoutExt>.txt
//     produced by the synchronous text-extraction path; origin is matched
//     by comparing base names.
//   - path:  <lang>/<originalStorageKey>
//     produced by the batch document translation flow; origin is the exact
//     source storage key embedded after the language segment.
//
// Keys matching neither scheme are unrecognized and excluded from grouping.
// Strict matching is deliberate: a guessed partial match could attach a
// translation to the wrong document.

type KeyKind int

const (
	KindUnrecognized KeyKind = iota
	KindFlatTranslation
	KindPathTranslation
)

// DecodedKey is the tagged result of decoding a translated artifact's
// storage key. It is produced once by the codec and consumed downstream as
// structured data; nothing re-parses the raw key.
type DecodedKey struct {
	Kind     KeyKind
	Language string
	// OriginBase is set for flat keys: the source's extensionless base name.
	OriginBase string
	// OriginKey is set for path keys: the exact source storage key.
	OriginKey string
}

var (
	flatKeyRe      = regexp.MustCompile(`^\d+_translated_([a-z]{2})_(.+)\.txt$`)
	pathKeyRe      = regexp.MustCompile(`^([a-z]{2})/(.+)$`)
	sourcePrefixRe = regexp.MustCompile(`^\d+_`)
)

// DecodeTranslationKey classifies a translated container key into one of
// the two naming schemes.
func DecodeTranslationKey(key string) DecodedKey {
	if m := flatKeyRe.FindStringSubmatch(key); m != nil {
		return DecodedKey{Kind: KindFlatTranslation, Language: m[1], OriginBase: m[2]}
	}
	if m := pathKeyRe.FindStringSubmatch(key); m != nil {
		return DecodedKey{Kind: KindPathTranslation, Language: m[1], OriginKey: m[2]}
	}
	return DecodedKey{Kind: KindUnrecognized}
}

// DisplayName strips the epoch-millisecond prefix from a source storage
// key. Legacy keys uploaded before prefixing are returned unchanged.
func DisplayName(storageKey string) string {
	return sourcePrefixRe.ReplaceAllString(storageKey, "")
}

// baseName returns a display name without its extension. Malformed names
// with no extension degrade to the full name rather than erroring.
func baseName(displayName string) string {
	ext := path.Ext(displayName)
	return strings.TrimSuffix(displayName, ext)
}
