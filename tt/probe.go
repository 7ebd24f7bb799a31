package tt

// Hit is an immutable snapshot of one record, copied out in a single pass.
// It has no link back to the table: once returned it is race-free and
// independently owned by the caller.
//
// When Probe reports found == false the Hit is the zero value and carries
// no information.
type Hit struct {
	Move  Move
	Value Value
	Eval  Value
	Depth int
	Bound Bound
	PV    bool
}

// Writer is a non-owning handle on exactly one live record. It is the only
// public type allowed to mutate table memory.
//
// A Writer is valid for the current search generation and until the next
// Resize or Clear; using it afterwards is undefined behavior. The zero
// Writer (from probing an unsized table) must not be saved through.
type Writer struct {
	entry     *Entry
	gen       uint8
	ageWeight int
}

// Save stores a search result through the handle, subject to the record's
// replacement policy (see Entry). It never blocks and performs no
// synchronization against concurrent probes or saves.
func (w Writer) Save(key uint64, v Value, pv bool, b Bound, depth int, m Move, ev Value) {
	w.entry.save(key, v, pv, b, depth, m, ev, w.gen, w.ageWeight)
}

// Probe locates the cluster owning key and scans it for a matching record.
//
// On a match it refreshes the record's generation stamp (so a hit is not
// judged stale by later replacement decisions), snapshots its data and
// returns found == true with a Writer bound to the same slot.
//
// Otherwise it returns found == false, an empty Hit, and a Writer bound to
// the best slot to overwrite: the first empty record, or failing that the
// record with the lowest quality (stored depth minus an age penalty), so
// eviction prefers old shallow data over fresh shallow data.
//
// A record whose signature is zero counts as empty; a genuine record that
// stored a zero signature is therefore occasionally sacrificed. Like the
// 16-bit signature aliasing itself, this is an accepted probabilistic
// trade, mitigated by table size.
func (t *Table) Probe(key uint64) (found bool, hit Hit, w Writer) {
	if t.clusterCount == 0 {
		return false, Hit{}, Writer{}
	}

	cl := &t.clusters[t.clusterIndex(key)]
	sig := uint16(key)

	for i := range cl.entries {
		e := &cl.entries[i]
		if e.key16 == sig || e.key16 == 0 {
			if e.key16 == sig && !e.empty() {
				e.genBound8 = t.generation8 | e.genBound8&(generationDelta-1) // refresh stamp
				return true, snapshot(e), t.writer(e)
			}
			return false, Hit{}, t.writer(e)
		}
	}

	// Cluster full: evict the lowest-quality record.
	replace := &cl.entries[0]
	for i := 1; i < clusterSize; i++ {
		if e := &cl.entries[i]; t.quality(replace) > t.quality(e) {
			replace = e
		}
	}

	return false, Hit{}, t.writer(replace)
}

func (t *Table) writer(e *Entry) Writer {
	return Writer{entry: e, gen: t.generation8, ageWeight: t.ageWeight}
}

// quality orders records for eviction: every generation of age costs
// ageWeight depth units, so older entries are treated as if shallower.
func (t *Table) quality(e *Entry) int {
	return int(e.depth8) - e.age(t.generation8)*t.ageWeight
}

func snapshot(e *Entry) Hit {
	return Hit{
		Move:  e.Move(),
		Value: e.Value(),
		Eval:  e.Eval(),
		Depth: e.Depth(),
		Bound: e.Bound(),
		PV:    e.IsPV(),
	}
}
