package main

// lineEnd is a junction the move tool reshapes toward. horizontalFirst is
// true when the end was found by walking horizontally from the grab point.
type lineEnd struct {
	pos             point
	horizontalFirst bool
	startIsAlt      bool
	midIsAlt        bool
	endIsAlt        bool
}

// moveTool grabs a line cell and drags every line that meets it. Nothing
// about the line network is stored between gestures: junctions are found
// by walking the grid from the grab point when the gesture starts.
type moveTool struct {
	diagram *Diagram
	snap    bool
	start   point
	ends    []lineEnd
}

func (t *moveTool) Start(pos point) error {
	d := t.diagram
	t.start = pos
	if t.snap {
		t.start = t.snapToNearest(pos)
	}
	t.ends = t.ends[:0]

	if !d.isSpecialAt(t.start) {
		return nil
	}

	startIsAlt := isArrowValue(d.rawAt(t.start))
	for _, dir := range directions {
		for _, mid := range t.followLine(t.start, dir) {
			horizontalFirst := dir.isHorizontalDir()
			midIsAlt := isArrowValue(d.rawAt(mid))

			// A straight run with no turn.
			if d.Context(mid).Sum() == 1 {
				t.ends = append(t.ends, lineEnd{
					pos:             mid,
					horizontalFirst: horizontalFirst,
					startIsAlt:      startIsAlt,
					endIsAlt:        midIsAlt,
				})
				continue
			}

			for _, turn := range directions {
				if turn == dir || turn.isOpposite(dir) {
					continue
				}
				second := t.followLine(mid, turn)
				if len(second) == 0 {
					continue
				}
				t.ends = append(t.ends, lineEnd{
					pos:             second[0],
					horizontalFirst: horizontalFirst,
					startIsAlt:      startIsAlt,
					midIsAlt:        midIsAlt,
					endIsAlt:        isArrowValue(d.rawAt(second[0])),
				})
			}
		}
	}
	return t.Move(t.start)
}

func (t *moveTool) Move(pos point) error {
	d := t.diagram
	d.ClearDraw()

	for _, end := range t.ends {
		if err := drawLine(d, t.start, end.pos, end.horizontalFirst, ' '); err != nil {
			return err
		}
	}
	for _, end := range t.ends {
		if err := drawLine(d, pos, end.pos, end.horizontalFirst, specialValue); err != nil {
			return err
		}
	}
	// Arrow heads would otherwise be overwritten by the plain line marker.
	for _, end := range t.ends {
		if end.startIsAlt {
			if err := d.DrawValue(pos, altSpecialValue); err != nil {
				return err
			}
		}
		if end.endIsAlt {
			if err := d.DrawValue(end.pos, altSpecialValue); err != nil {
				return err
			}
		}
		if end.midIsAlt {
			mid := point{pos.X, end.pos.Y}
			if end.horizontalFirst {
				mid = point{end.pos.X, pos.Y}
			}
			if err := d.DrawValue(mid, altSpecialValue); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *moveTool) End() error {
	t.diagram.CommitDraw()
	return nil
}

func (t *moveTool) Cursor(pos point) cursorKind {
	if t.diagram.isSpecialAt(pos) {
		return cursorPointer
	}
	return cursorDefault
}

func (t *moveTool) HandleKey(string) error { return nil }

// followLine walks from start in dir while the next cell is special. It
// returns the side T-junctions passed on the way and the last cell reached.
func (t *moveTool) followLine(start, dir point) []point {
	var junctions []point
	cur := start
	for {
		next := cur.Add(dir)
		if !t.diagram.isSpecialAt(next) {
			if cur != start {
				junctions = append(junctions, cur)
			}
			return junctions
		}
		cur = next
		if t.diagram.Context(cur).Sum() == 3 {
			junctions = append(junctions, cur)
		}
	}
}

// snapToNearest picks the most connected special cell around pos, looking
// one cell away in every direction including diagonals.
func (t *moveTool) snapToNearest(pos point) point {
	if t.diagram.isSpecialAt(pos) {
		return pos
	}
	candidates := append(append([]point{}, directions...),
		dirLeft.Add(dirUp),
		dirLeft.Add(dirDown),
		dirRight.Add(dirUp),
		dirRight.Add(dirDown),
	)

	best := pos
	bestSum := 0
	for _, dir := range candidates {
		next := pos.Add(dir)
		if !t.diagram.isSpecialAt(next) {
			continue
		}
		if sum := t.diagram.Context(next).Sum(); sum > bestSum {
			best = next
			bestSum = sum
		}
	}
	return best
}
