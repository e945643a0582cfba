package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseFromURI(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{uri: "mongodb://localhost:27017", want: DefaultMongoDatabase},
		{uri: "mongodb://localhost:27017/", want: DefaultMongoDatabase},
		{uri: "mongodb://user:pw@localhost:27017/site", want: "site"},
		{uri: "mongodb://localhost:27017/site?retryWrites=true", want: "site"},
		{uri: "not a uri", want: DefaultMongoDatabase},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, databaseFromURI(tc.uri), tc.uri)
	}
}
