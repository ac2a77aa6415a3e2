package wad

// Records refer to each other by index. Nothing is resolved at decode time; these look ups
// check every index and report false for NoSidedef or an index outside its table.

func at[T any](s []T, i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// Sidedef returns the sidedef at index
func (l *Level) Sidedef(index int16) (Sidedef, bool) {
	return at(l.Sidedefs, int(index))
}

// SidedefSector returns the sector a sidedef faces
func (l *Level) SidedefSector(index int16) (Sector, bool) {
	side, ok := l.Sidedef(index)
	if !ok {
		return Sector{}, false
	}
	return at(l.Sectors, int(side.Sector))
}

// FrontSector returns the sector on the right side of linedef i
func (l *Level) FrontSector(i int) (Sector, bool) {
	ld, ok := at(l.Linedefs, i)
	if !ok {
		return Sector{}, false
	}
	return l.SidedefSector(ld.SideR)
}

// BackSector returns the sector on the left side of linedef i. One-sided linedefs have none.
func (l *Level) BackSector(i int) (Sector, bool) {
	ld, ok := at(l.Linedefs, i)
	if !ok {
		return Sector{}, false
	}
	return l.SidedefSector(ld.SideL)
}

// SegLinedef returns the linedef seg i is part of
func (l *Level) SegLinedef(i int) (Linedef, bool) {
	seg, ok := at(l.Segs, i)
	if !ok {
		return Linedef{}, false
	}
	return at(l.Linedefs, int(seg.Linedef))
}

// SubSectorSegs returns the segs of sub-sector i
func (l *Level) SubSectorSegs(i int) ([]Seg, bool) {
	ss, ok := at(l.SubSectors, i)
	if !ok {
		return nil, false
	}
	first, n := int(ss.FirstSeg), int(ss.NumSegs)
	if first < 0 || n < 0 || first+n > len(l.Segs) {
		return nil, false
	}
	return l.Segs[first : first+n], true
}

// checkReferences counts the index fields that point outside their table. Line vertexes are
// checked by BuildLines, which fails on them; everything here is only reported.
func (l *Level) checkReferences() int {
	bad := 0
	report := func(format string, args ...any) {
		bad++
		logger.Debugf("Level %v: "+format, append([]any{l.Name}, args...)...)
	}

	for i, side := range l.Sidedefs {
		if _, ok := at(l.Sectors, int(side.Sector)); !ok {
			report("sidedef %d: sector %d of %d", i, side.Sector, len(l.Sectors))
		}
	}
	for i, ld := range l.Linedefs {
		if _, ok := l.Sidedef(ld.SideR); !ok {
			report("linedef %d: right sidedef %d of %d", i, ld.SideR, len(l.Sidedefs))
		}
		if _, ok := l.Sidedef(ld.SideL); !ok && ld.SideL != NoSidedef {
			report("linedef %d: left sidedef %d of %d", i, ld.SideL, len(l.Sidedefs))
		}
	}
	for i, seg := range l.Segs {
		if _, ok := at(l.Linedefs, int(seg.Linedef)); !ok {
			report("seg %d: linedef %d of %d", i, seg.Linedef, len(l.Linedefs))
		}
	}
	for i := range l.SubSectors {
		if _, ok := l.SubSectorSegs(i); !ok {
			report("sub sector %d: segs %d+%d of %d", i, l.SubSectors[i].FirstSeg,
				l.SubSectors[i].NumSegs, len(l.Segs))
		}
	}
	return bad
}
