package wad

// Reject is the sector-to-sector visibility table. A set bit means a monster in the first
// sector can never see the second, so the line of sight check is skipped.
type Reject struct {
	NumSectors int
	bits       []byte
}

// DecodeReject decodes a REJECT lump for a level with numSectors sectors. Node builders often
// write the lump short or leave it empty; cells past the end of the lump reject nothing.
func DecodeReject(lump []byte, numSectors int) Reject {
	reject := Reject{NumSectors: numSectors, bits: lump}
	need := (numSectors*numSectors + 7) / 8
	if len(lump) > need {
		reject.bits = lump[:need]
	} else if len(lump) < need {
		logger.Debugf("REJECT: %d bytes for %d sectors, need %d", len(lump), numSectors, need)
	}
	return reject
}

// Rejected reports whether sector from can never see sector to
func (r Reject) Rejected(from, to int) bool {
	if from < 0 || to < 0 || from >= r.NumSectors || to >= r.NumSectors {
		return false
	}
	cell := from*r.NumSectors + to
	i, j := cell/8, cell%8
	if i >= len(r.bits) {
		return false
	}
	return r.bits[i]&(1<<j) != 0
}
