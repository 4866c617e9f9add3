package atarplot

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

// RootSource reads the "atar" and "calorimeter" trees of a simulation
// output file. It implements DataSource with row-indexed reads.
type RootSource struct {
	f    *riofs.File
	atar rtree.Tree
	calo rtree.Tree
}

func OpenRootSource(name string) (*RootSource, error) {
	f, err := groot.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", name, err)
	}
	atar, err := treeOf(f, "atar")
	if err != nil {
		f.Close()
		return nil, err
	}
	calo, err := treeOf(f, "calorimeter")
	if err != nil {
		f.Close()
		return nil, err
	}
	return &RootSource{f: f, atar: atar, calo: calo}, nil
}

func treeOf(f *riofs.File, name string) (rtree.Tree, error) {
	obj, err := f.Get(name)
	if err != nil {
		return nil, fmt.Errorf("could not get tree %q: %w", name, err)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		return nil, fmt.Errorf("object %q is a %T, not a tree", name, obj)
	}
	return tree, nil
}

func (s *RootSource) Close() error { return s.f.Close() }

func (s *RootSource) NumEvents() int64 { return s.atar.Entries() }

func (s *RootSource) ATARHits(i int64) (HitBank, error) {
	var bank HitBank
	rvars := []rtree.ReadVar{
		{Name: "pixel_hits", Value: &bank.PixelHits},
		{Name: "pixel_time", Value: &bank.PixelTime},
		{Name: "pixel_edep", Value: &bank.PixelEdep},
		{Name: "pixel_pdg", Value: &bank.PixelPDG},
		{Name: "pion_dar", Value: &bank.PionDAR},
	}
	if err := s.readRow(s.atar, i, rvars); err != nil {
		return HitBank{}, fmt.Errorf("atar event %d: %w", i, err)
	}
	return bank, nil
}

func (s *RootSource) CaloHits(i int64) (CaloBank, error) {
	var bank CaloBank
	rvars := []rtree.ReadVar{
		{Name: "crystal", Value: &bank.Crystal},
		{Name: "edep", Value: &bank.Edep},
	}
	if err := s.readRow(s.calo, i, rvars); err != nil {
		return CaloBank{}, fmt.Errorf("calorimeter event %d: %w", i, err)
	}
	return bank, nil
}

func (s *RootSource) readRow(tree rtree.Tree, i int64, rvars []rtree.ReadVar) error {
	if i < 0 || i >= tree.Entries() {
		return fmt.Errorf("row %d out of range [0, %d)", i, tree.Entries())
	}
	r, err := rtree.NewReader(tree, rvars, rtree.WithRange(i, i+1))
	if err != nil {
		return fmt.Errorf("could not create reader: %w", err)
	}
	defer r.Close()
	return r.Read(func(rtree.RCtx) error { return nil })
}
