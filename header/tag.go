package header

import "strconv"

// Tag identifies a header entry.
type Tag uint32

// Tag numbers follow the RPM header tag registry.
const (
	TagName           Tag = 1000
	TagVersion        Tag = 1001
	TagRelease        Tag = 1002
	TagEpoch          Tag = 1003
	TagOldFilenames   Tag = 1027
	TagFileModes      Tag = 1030
	TagFileUIDs       Tag = 1031
	TagFileGIDs       Tag = 1032
	TagFileUserName   Tag = 1039
	TagFileGroupName  Tag = 1040
	TagSourceRPM      Tag = 1044
	TagProvideName    Tag = 1047
	TagDefaultPrefix  Tag = 1056
	TagPrefixes       Tag = 1098
	TagSourcePackage  Tag = 1106
	TagProvideFlags   Tag = 1112
	TagProvideVersion Tag = 1113
	TagDirIndexes     Tag = 1116
	TagBaseNames      Tag = 1117
	TagDirNames       Tag = 1118
)

var tagNames = map[Tag]string{
	TagName:           "Name",
	TagVersion:        "Version",
	TagRelease:        "Release",
	TagEpoch:          "Epoch",
	TagOldFilenames:   "OldFilenames",
	TagFileModes:      "FileModes",
	TagFileUIDs:       "FileUIDs",
	TagFileGIDs:       "FileGIDs",
	TagFileUserName:   "FileUserName",
	TagFileGroupName:  "FileGroupName",
	TagSourceRPM:      "SourceRPM",
	TagProvideName:    "ProvideName",
	TagDefaultPrefix:  "DefaultPrefix",
	TagPrefixes:       "Prefixes",
	TagSourcePackage:  "SourcePackage",
	TagProvideFlags:   "ProvideFlags",
	TagProvideVersion: "ProvideVersion",
	TagDirIndexes:     "DirIndexes",
	TagBaseNames:      "BaseNames",
	TagDirNames:       "DirNames",
}

// String returns the tag name, or "Tag(n)" for unregistered tags.
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "Tag(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// Kind is the value type stored under a tag.
type Kind uint8

const (
	KindStrings Kind = iota
	KindUint32s
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStrings:
		return "strings"
	case KindUint32s:
		return "uint32s"
	default:
		return "unknown"
	}
}

// PutMode controls how a put combines with an existing value.
type PutMode uint8

const (
	// Replace overwrites any existing value. It is the default.
	Replace PutMode = iota
	// Append adds values after any existing ones.
	Append
)
