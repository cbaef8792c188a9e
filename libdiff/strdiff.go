package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/J08nY/sec-certs/ir"
)

// Strings shorter than this are replaced wholesale; the patch framing
// costs more than it saves.
const strDiffMin = 64

func stringDiff(from, to string) map[string]any {
	if len(from) < strDiffMin || len(to) < strDiffMin {
		return replaceWith(to)
	}
	dmp := diffpatch.New()
	patches := dmp.PatchMake(from, to)
	text := dmp.PatchToText(patches)
	if len(text) >= len(to) {
		return replaceWith(to)
	}
	return map[string]any{ir.StrDiff.Key(): text}
}

func patchString(doc, patchText, at string) (string, error) {
	dmp := diffpatch.New()
	patches, err := dmp.PatchFromText(patchText)
	if err != nil {
		return "", diffErr(at, "parsing string patch", err)
	}
	res, applied := dmp.PatchApply(patches, doc)
	for _, ok := range applied {
		if !ok {
			return "", diffErr(at, "string patch does not fit the document", nil)
		}
	}
	return res, nil
}
