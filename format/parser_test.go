package format

import (
	"testing"

	"github.com/rchilly/scn/kind"
	"github.com/rchilly/scn/source"
	"github.com/stretchr/testify/assert"
)

func kinds(ks ...kind.Kind) func(int) kind.Kind {
	return func(id int) kind.Kind { return ks[id] }
}

func TestCheckAcceptsWellFormed(t *testing.T) {
	err := Check("{} and {}", []kind.Kind{kind.Int, kind.String})
	assert.NoError(t, err)
}

func TestCheckRejectsMixedIndexing(t *testing.T) {
	err := Check("{} and {0}", []kind.Kind{kind.Int, kind.String})
	assert.Error(t, err)
}

func TestCheckRejectsOutOfRange(t *testing.T) {
	err := Check("{5}", []kind.Kind{kind.Int})
	assert.Error(t, err)
}

func TestCheckRejectsDuplicateArg(t *testing.T) {
	err := Check("{0} {0}", []kind.Kind{kind.Int, kind.String})
	assert.Error(t, err)
}

func TestCheckRequiresExhaustiveness(t *testing.T) {
	err := Check("{0}", []kind.Kind{kind.Int, kind.String})
	assert.Error(t, err)
}

func TestCheckRejectsIncompatiblePresentation(t *testing.T) {
	err := Check("{:x}", []kind.Kind{kind.Bool})
	assert.Error(t, err)
}

func TestCheckDoubledBracesAreLiteral(t *testing.T) {
	err := Check("{{}} {}", []kind.Kind{kind.Int})
	assert.NoError(t, err)
}

type fakeArg struct {
	k   kind.Kind
	out *string
}

type fakeDispatcher struct {
	args []fakeArg
}

func (d *fakeDispatcher) NumArgs() int            { return len(d.args) }
func (d *fakeDispatcher) KindOf(id int) kind.Kind { return d.args[id].k }
func (d *fakeDispatcher) Scan(id int, src source.Source, spec Spec) error {
	s, err := src.ReadRawUnits(len(*d.args[id].out))
	if err != nil {
		return err
	}
	*d.args[id].out = s
	return nil
}

func TestRunAnchoredLiteralMatch(t *testing.T) {
	a, b := "", ""
	d := &fakeDispatcher{args: []fakeArg{
		{k: kind.String, out: &a},
		{k: kind.String, out: &b},
	}}
	a, b = "xx", "yy"

	src := source.NewString("xx,yy rest")
	suf, err := Run("{},{} rest", src, d)
	assert.NoError(t, err)
	assert.Equal(t, "xx", a)
	assert.Equal(t, "yy", b)
	assert.True(t, suf.IsEmpty())
}

func TestRunLiteralMismatch(t *testing.T) {
	a := ""
	d := &fakeDispatcher{args: []fakeArg{{k: kind.String, out: &a}}}
	a = "xx"

	src := source.NewString("xx;rest")
	_, err := Run("{},", src, d)
	assert.Error(t, err)
}

func TestRunEndOfInputOnLiteral(t *testing.T) {
	src := source.NewString("ab")
	_, err := Run("ab,", src, &fakeDispatcher{})
	assert.Error(t, err)
}

func TestWalkSeenTracksAllArgs(t *testing.T) {
	seen, err := walk("{1} {0}", 2, kinds(kind.Int, kind.Int), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []bool{true, true}, seen)
}
