package ntxfmt

import "fmt"

// PartName derives the archive entry name for a part id.
//
// The derivation is a format contract shared with the pack producer:
// the fixed prefix plus the id as zero-padded 4-digit decimal, e.g.
// id 7 -> "NTX0007". Ids above 9999 widen to 5 digits, which still fits
// the storage medium's 8-character name limit.
func PartName(id uint16) string {
	return fmt.Sprintf("%s%04d", partPrefix, id)
}
