package jar

// dedupeRecords drops repeated cookies, keeping the first occurrence per
// (name, domain, path). Input order is otherwise preserved.
func dedupeRecords(records []CookieRecord) []CookieRecord {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]CookieRecord, 0, len(records))
	for _, r := range records {
		path := ""
		if r.Path != nil {
			path = *r.Path
		}
		key := r.Name + "\x00" + r.Domain + "\x00" + path
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
