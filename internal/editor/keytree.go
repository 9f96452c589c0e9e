package editor

// KeyNode is one node of the leader key tree: either a Group of
// further choices or a Binding that runs a command. The tree is built
// once at startup, never mutated, and shared by reference.
type KeyNode interface {
	NodeTitle() string
}

// Group holds child nodes keyed by single key tokens, in insertion
// order.
type Group struct {
	title    string
	order    []string
	children map[string]KeyNode
}

// Binding terminates a sequence with a command id.
type Binding struct {
	title   string
	command string
}

func NewGroup(title string) *Group {
	return &Group{title: title, children: make(map[string]KeyNode)}
}

func (g *Group) NodeTitle() string { return g.title }

// Add attaches node under key. Re-adding a key overwrites the node
// but keeps its original position.
func (g *Group) Add(key string, node KeyNode) *Group {
	if _, ok := g.children[key]; !ok {
		g.order = append(g.order, key)
	}
	g.children[key] = node
	return g
}

// Bind attaches a command binding under key.
func (g *Group) Bind(key, title, command string) *Group {
	return g.Add(key, &Binding{title: title, command: command})
}

// Child resolves one key token. ok=false means no binding exists at
// this step.
func (g *Group) Child(key string) (KeyNode, bool) {
	node, ok := g.children[key]
	return node, ok
}

func (b *Binding) NodeTitle() string { return b.title }
func (b *Binding) Command() string   { return b.command }

// Hint describes one immediate child of a group for the leader
// overlay.
type Hint struct {
	Key   string
	Title string
	Group bool
}

// Hints lists the group's children in insertion order.
func (g *Group) Hints() []Hint {
	hints := make([]Hint, 0, len(g.order))
	for _, key := range g.order {
		node := g.children[key]
		_, isGroup := node.(*Group)
		hints = append(hints, Hint{Key: key, Title: node.NodeTitle(), Group: isGroup})
	}
	return hints
}

// DefaultKeymap builds the process-wide leader tree.
func DefaultKeymap() *Group {
	file := NewGroup("File").
		Bind("f", "Open File", cmdFileOpen).
		Bind("s", "Save File", cmdFileSave)
	return NewGroup("Leader").
		Add("f", file).
		Bind("p", "Command Palette", cmdPalette).
		Bind("q", "Quit", cmdQuit)
}
