package ir

// Path is a filesystem path value. It is permitted natively only at the
// Raw and Obj stages; Storage and Working carry it as a tagged mapping.
type Path string

func (p Path) String() string {
	return string(p)
}

// IdentityHash never fails: a path hashes by its string form under a
// path-distinct kind, so the path "/x" and the string "/x" differ.
func (p Path) IdentityHash() (uint64, error) {
	return hashString(kindPath, string(p)), nil
}
