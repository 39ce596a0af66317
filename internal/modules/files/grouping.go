package files

import "sort"

// GroupFiles reconstructs {originalFile, translations[]} groups from flat
// container listings. Every source file yields exactly one group, even with
// zero translations. A translation whose decoded origin matches no source
// is dropped; orphans are never grouped.
func GroupFiles(sources []SourceFile, translations []TranslatedArtifact) []FileGroup {
	type decoded struct {
		artifact TranslatedArtifact
		key      DecodedKey
	}
	candidates := make([]decoded, 0, len(translations))
	for _, t := range translations {
		d := DecodeTranslationKey(t.StorageKey)
		if d.Kind == KindUnrecognized {
			continue
		}
		if t.Language == "" {
			t.Language = d.Language
		}
		candidates = append(candidates, decoded{artifact: t, key: d})
	}

	groups := make([]FileGroup, 0, len(sources))
	for _, src := range sources {
		if src.DisplayName == "" {
			src.DisplayName = DisplayName(src.StorageKey)
		}
		srcBase := baseName(src.DisplayName)

		matched := []TranslatedArtifact{}
		for _, c := range candidates {
			switch c.key.Kind {
			case KindFlatTranslation:
				if c.key.OriginBase == srcBase {
					matched = append(matched, c.artifact)
				}
			case KindPathTranslation:
				if c.key.OriginKey == src.StorageKey {
					matched = append(matched, c.artifact)
				}
			}
		}
		// Deterministic order for clients; duplicates per language are all
		// kept.
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Language < matched[j].Language
		})

		groups = append(groups, FileGroup{OriginalFile: src, Translations: matched})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].OriginalFile.UploadedAt.After(groups[j].OriginalFile.UploadedAt)
	})
	return groups
}
