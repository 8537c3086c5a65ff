package ml

import (
	"path/filepath"
	"testing"
)

// stumpForest votes class 1 whenever features[0] > 0.5.
func stumpForest(trees int) *RandomForest {
	stump := []TreeNode{
		{FeatureIdx: 0, Threshold: 0.5, LeftChild: 1, RightChild: 2},
		{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: 0, Score: 0.2, IsLeaf: true},
		{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: 1, Score: 0.9, IsLeaf: true},
	}
	rf := &RandomForest{}
	for i := 0; i < trees; i++ {
		rf.trees = append(rf.trees, stump)
	}
	return rf
}

func TestForestClassify(t *testing.T) {
	rf := stumpForest(3)

	label, err := rf.Classify([]float64{0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 {
		t.Fatalf("expected label 1, got %d", label)
	}

	label, err = rf.Classify([]float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 0 {
		t.Fatalf("expected label 0, got %d", label)
	}
}

func TestForestScore(t *testing.T) {
	rf := stumpForest(2)

	score, err := rf.Score([]float64{0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.9 {
		t.Fatalf("expected score 0.9, got %v", score)
	}

	score, err = rf.Score([]float64{0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.2 {
		t.Fatalf("expected score 0.2, got %v", score)
	}
}

func TestForestRejectsShortVector(t *testing.T) {
	rf := stumpForest(1)
	if _, err := rf.Classify(nil); err == nil {
		t.Fatal("expected error for empty feature vector")
	}
}

func TestForestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.json")

	rf := stumpForest(2)
	if err := rf.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded := &RandomForest{}
	if err := loaded.Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	label, err := loaded.Classify([]float64{0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != 1 {
		t.Fatalf("expected label 1 after reload, got %d", label)
	}
}

func TestLoadClassifierFallback(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "missing.json")
	secondary := filepath.Join(dir, "forest.json")
	if err := stumpForest(1).Save(secondary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	model, err := LoadClassifier(primary, secondary)
	if err != nil {
		t.Fatalf("expected fallback to succeed: %v", err)
	}
	if model == nil {
		t.Fatal("expected a classifier")
	}
}

func TestLoadClassifierAllPathsFail(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadClassifier(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	if err == nil {
		t.Fatal("expected error when no candidate path loads")
	}
}
