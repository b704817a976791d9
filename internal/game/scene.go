package game

// Scene is the navigation state. Title is only ever the starting state;
// there is no path back to it.
type Scene int

const (
	SceneTitle Scene = iota
	SceneForest
	SceneMap
)

func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case SceneForest:
		return "forest"
	case SceneMap:
		return "map"
	}
	return "unknown"
}
