package ml

import (
	"encoding/json"
	"errors"
	"os"
)

// TreeNode is one node of a decision tree stored as a flat array. Leaves
// carry the class label and the class-1 probability observed at training
// time; internal nodes route on features[FeatureIdx] <= Threshold.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	Score      float64 `json:"score"`
	IsLeaf     bool    `json:"is_leaf"`
}

// RandomForest is the serialized classifier artifact. Classify is a majority
// vote over the trees; Score averages the per-leaf class-1 probabilities,
// mirroring the probability estimate of the original pipeline.
type RandomForest struct {
	trees [][]TreeNode
}

type forestFile struct {
	Trees [][]TreeNode `json:"trees"`
}

func (rf *RandomForest) Classify(features []float64) (int, error) {
	if len(rf.trees) == 0 {
		return 0, ErrModelUnavailable
	}
	votes := 0
	for _, tree := range rf.trees {
		leaf, err := evalTree(tree, features)
		if err != nil {
			return 0, err
		}
		if leaf.ClassLabel == 1 {
			votes++
		}
	}
	if votes*2 > len(rf.trees) {
		return 1, nil
	}
	return 0, nil
}

func (rf *RandomForest) Score(features []float64) (float64, error) {
	if len(rf.trees) == 0 {
		return 0, ErrModelUnavailable
	}
	sum := 0.0
	for _, tree := range rf.trees {
		leaf, err := evalTree(tree, features)
		if err != nil {
			return 0, err
		}
		sum += leaf.Score
	}
	return sum / float64(len(rf.trees)), nil
}

func evalTree(nodes []TreeNode, features []float64) (TreeNode, error) {
	if len(nodes) == 0 {
		return TreeNode{}, errors.New("empty tree")
	}
	idx := 0
	for {
		node := nodes[idx]
		if node.IsLeaf {
			return node, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return TreeNode{}, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(nodes) {
			return TreeNode{}, errors.New("invalid tree state")
		}
	}
}

// Save writes the forest artifact as JSON.
func (rf *RandomForest) Save(path string) error {
	if len(rf.trees) == 0 {
		return errors.New("forest is empty")
	}
	payload, err := json.Marshal(forestFile{Trees: rf.trees})
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// Load reads a forest artifact from disk.
func (rf *RandomForest) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file forestFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return err
	}
	if len(file.Trees) == 0 {
		return errors.New("artifact contains no trees")
	}
	rf.trees = file.Trees
	return nil
}
