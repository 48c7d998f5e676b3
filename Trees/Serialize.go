package Trees

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/g-m-twostay/go-bitree/Queues"
)

// nilMarker stands for a missing child in both encodings.
const nilMarker = "#"

// maxDecodeDepth bounds the nesting the preorder decoder follows. Deeper input
// is rejected as malformed instead of exhausting the goroutine stack.
var maxDecodeDepth = 1 << 20

// encodable reports whether data survives whitespace tokenization.
func encodable(data string) bool {
	return data != "" && strings.IndexFunc(data, unicode.IsSpace) < 0
}

// checkPayloads fails on the first payload that cannot be encoded, before
// anything is written.
func checkPayloads(root *Node) error {
	for n := range preorderNodes(root) {
		if !encodable(n.Data) {
			return invalidArgument("payload %q is empty or contains whitespace", n.Data)
		}
	}
	return nil
}

func writeNode(w *bufio.Writer, n *Node) error {
	if n == nil {
		_, err := w.WriteString(nilMarker + "\n")
		return err
	}
	_, err := fmt.Fprintf(w, "%d %s\n", n.Key, n.Data)
	return err
}

// SerializePreorder writes one "<key> <payload>" line per node in preorder and
// a "#" line for every missing child, so the shape can be rebuilt exactly.
// Nothing is written if a payload is empty or contains whitespace.
// Time: O(n); Space: O(D)
func SerializePreorder(w io.Writer, root *Node) error {
	if err := checkPayloads(root); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	st := Queues.MakeArrayStack[*Node]()
	for st.Push(root); !st.Empty(); {
		cur, _ := st.Pop()
		if err := writeNode(bw, cur); err != nil {
			return err
		}
		if cur != nil {
			st.Push(cur.r)
			st.Push(cur.l)
		}
	}
	return bw.Flush()
}

// SerializeLevelOrder writes the node count on the first line, then the root
// entry, then for every node in level order the entries of its left and right
// children ("#" when missing). The empty tree is "0" followed by "#".
// Nothing is written if a payload is empty or contains whitespace.
// Time: O(n); Space: O(w)
func SerializeLevelOrder(w io.Writer, root *Node) error {
	if err := checkPayloads(root); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", Count(root)); err != nil {
		return err
	}
	if err := writeNode(bw, root); err != nil {
		return err
	}
	for n := range levelorderNodes(root) {
		if err := writeNode(bw, n.l); err != nil {
			return err
		}
		if err := writeNode(bw, n.r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Serialize writes the tree with the given encoding.
func Serialize(w io.Writer, root *Node, enc Encoding) error {
	switch enc {
	case EncodingDFS:
		return SerializePreorder(w, root)
	case EncodingBFS:
		return SerializeLevelOrder(w, root)
	}
	return &UnsupportedStrategyError{"serialization algorithm", string(enc)}
}

// decoder reads whitespace separated tokens and counts them for error reports.
type decoder struct {
	sc  *bufio.Scanner
	pos int
}

func newDecoder(r io.Reader) *decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &decoder{sc: sc}
}

func (d *decoder) fail(format string, args ...any) error {
	return &DeserializationError{d.pos, fmt.Sprintf(format, args...)}
}

// next token. what names the expected token for the truncation error.
func (d *decoder) next(what string) (string, error) {
	d.pos++
	if d.sc.Scan() {
		return d.sc.Text(), nil
	}
	if err := d.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", d.fail("token too long")
		}
		return "", fmt.Errorf("reading serialized tree: %w", err)
	}
	return "", d.fail("unexpected end of input, want %s", what)
}

// entry reads either a "#" marker, returning nil, or a key and a payload.
func (d *decoder) entry() (*Node, error) {
	tok, err := d.next("key or " + nilMarker)
	if err != nil {
		return nil, err
	}
	if tok == nilMarker {
		return nil, nil
	}
	key, err := strconv.Atoi(tok)
	if err != nil {
		return nil, d.fail("key %q is not an integer", tok)
	}
	data, err := d.next("payload")
	if err != nil {
		return nil, err
	}
	return &Node{Key: key, Data: data}, nil
}

// end fails if any token is left.
func (d *decoder) end() error {
	if d.sc.Scan() {
		d.pos++
		return d.fail("unexpected trailing token %q", d.sc.Text())
	}
	if err := d.sc.Err(); err != nil {
		return fmt.Errorf("reading serialized tree: %w", err)
	}
	return nil
}

func (d *decoder) preorder(depth int) (*Node, error) {
	if depth > maxDecodeDepth {
		return nil, d.fail("tree nested deeper than %d levels", maxDecodeDepth)
	}
	n, err := d.entry()
	if err != nil || n == nil {
		return nil, err
	}
	if n.l, err = d.preorder(depth + 1); err != nil {
		return nil, err
	}
	if n.r, err = d.preorder(depth + 1); err != nil {
		return nil, err
	}
	return n, nil
}

// Deserialize reads a tree written by SerializePreorder. The whole input must
// be a single tree. A lone "#" decodes to the empty tree (nil, nil). Trees
// deeper than 1<<20 levels are rejected with a DeserializationError.
// Recursive.
// Time: O(n)
func Deserialize(r io.Reader) (*Node, error) {
	d := newDecoder(r)
	root, err := d.preorder(1)
	if err != nil {
		return nil, err
	}
	if err = d.end(); err != nil {
		return nil, err
	}
	return root, nil
}

// DeserializeLevelOrder reads a tree written by SerializeLevelOrder. The
// number of decoded nodes must match the count on the first line.
// Time: O(n); Space: O(w)
func DeserializeLevelOrder(r io.Reader) (*Node, error) {
	d := newDecoder(r)
	tok, err := d.next("node count")
	if err != nil {
		return nil, err
	}
	want, err := strconv.Atoi(tok)
	if err != nil || want < 0 {
		return nil, d.fail("node count %q is not a non-negative integer", tok)
	}
	root, err := d.entry()
	if err != nil {
		return nil, err
	}
	got := 0
	if root != nil {
		got = 1
		q := Queues.MakeArrayQueue[*Node]()
		for q.Push(root); !q.Empty(); {
			cur, _ := q.Pop()
			for _, slot := range [2]**Node{&cur.l, &cur.r} {
				c, err := d.entry()
				if err != nil {
					return nil, err
				}
				if c != nil {
					if got++; got > want {
						return nil, d.fail("more nodes than the declared %d", want)
					}
					*slot = c
					q.Push(c)
				}
			}
		}
	}
	if got != want {
		return nil, d.fail("decoded %d nodes, declared %d", got, want)
	}
	if err = d.end(); err != nil {
		return nil, err
	}
	return root, nil
}

// DeserializeAs reads a tree written with the given encoding.
func DeserializeAs(r io.Reader, enc Encoding) (*Node, error) {
	switch enc {
	case EncodingDFS:
		return Deserialize(r)
	case EncodingBFS:
		return DeserializeLevelOrder(r)
	}
	return nil, &UnsupportedStrategyError{"serialization algorithm", string(enc)}
}

// SerializeToFile writes the tree to a temporary file next to path and
// renames it over path once complete. On failure path is left untouched.
func (u *BiTree) SerializeToFile(path string, enc Encoding) (err error) {
	if u == nil {
		return invalidArgument("nil tree")
	}
	if _, err = ParseEncoding(string(enc)); err != nil {
		return err
	}
	if err = checkPayloads(u.root); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = Serialize(f, u.root, enc); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadFile deserializes the tree stored at path and adopts it with FromRoot.
func ReadFile(path string, enc Encoding, opts ...Option) (*BiTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	root, err := DeserializeAs(f, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return FromRoot(root, opts...)
}
