package repositories

import (
	"testing"

	"bookstore/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock).ClientOptions(database.ClientOptions()))
}

// toDoc renders v the way the driver would store it.
func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.MarshalWithRegistry(database.Registry(), v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func cursor(mt *mtest.T, docs ...bson.D) bson.D {
	ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docs...)
}

func written(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n})
}

func modified(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: n})
}

func commandError(msg string) bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: msg})
}

// sentDocument returns the sub-document at path in the next command the
// repository sent.
func sentDocument(mt *mtest.T, path ...string) bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt, "no command was sent")
	val, err := evt.Command.LookupErr(path...)
	require.NoError(mt, err, "command %s has no %v", evt.CommandName, path)
	doc, ok := val.DocumentOK()
	require.True(mt, ok, "%v is not a document", path)
	return doc
}

func sentFindFilter(mt *mtest.T) bson.Raw {
	return sentDocument(mt, "filter")
}

func sentDeleteFilter(mt *mtest.T) bson.Raw {
	return sentDocument(mt, "deletes", "0", "q")
}

func sentReplaceFilter(mt *mtest.T) bson.Raw {
	return sentDocument(mt, "updates", "0", "q")
}

func intValue(mt *mtest.T, v bson.RawValue) int64 {
	mt.Helper()
	if i, ok := v.Int32OK(); ok {
		return int64(i)
	}
	i, ok := v.Int64OK()
	require.True(mt, ok, "%s is not an integer", v)
	return i
}

// assertOwnedFilter checks the filter matches exactly one id for one owner.
func assertOwnedFilter(mt *mtest.T, filter bson.Raw, id primitive.ObjectID, userID int) {
	mt.Helper()
	elems, err := filter.Elements()
	require.NoError(mt, err)
	assert.Len(mt, elems, 2, "filter %s", filter)
	assert.Equal(mt, id, filter.Lookup("_id").ObjectID())
	assert.EqualValues(mt, userID, intValue(mt, filter.Lookup("userId")))
}

func assertUserFilter(mt *mtest.T, filter bson.Raw, userID int) {
	mt.Helper()
	elems, err := filter.Elements()
	require.NoError(mt, err)
	assert.Len(mt, elems, 1, "filter %s", filter)
	assert.EqualValues(mt, userID, intValue(mt, filter.Lookup("userId")))
}

func assertNothingSent(mt *mtest.T) {
	mt.Helper()
	assert.Nil(mt, mt.GetStartedEvent())
}
