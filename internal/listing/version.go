package listing

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// VersionFromPath derives the version identifier for a source file: its
// base name with the extension removed.
func VersionFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// versionNumber extracts the last run of decimal digits in id, so that
// "v10" sorts after "v9" and "build-2-patch-3" sorts by 3.
func versionNumber(id string) (int64, bool) {
	end := -1
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] >= '0' && id[i] <= '9' {
			end = i + 1
			break
		}
	}
	if end == -1 {
		return 0, false
	}
	start := end - 1
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	n, err := strconv.ParseInt(id[start:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortVersions orders ids in place. When every id embeds a number the
// order is numeric ascending (ties broken by string order); otherwise it
// is plain string order. The resulting order is fixed for the whole run
// and shared by every renderer.
func SortVersions(ids []string) {
	nums := make(map[string]int64, len(ids))
	for _, id := range ids {
		n, ok := versionNumber(id)
		if !ok {
			sort.Strings(ids)
			return
		}
		nums[id] = n
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := nums[ids[i]], nums[ids[j]]
		if a != b {
			return a < b
		}
		return ids[i] < ids[j]
	})
}
