// Package jianshu holds the typed bindings of the Jianshu GraphQL API.
//
// generated.go is produced by cmd/bindgen from internal/schema and
// internal/operations. Each operation is exposed as a package-level
// *graphql.Operation; run it with Execute, or with Start to observe it while
// it is in flight:
//
//	res, err := jianshu.HotArticlesDocument.Execute(ctx, client, jianshu.HotArticlesQueryVariables{})
//
// A non-nil result returned together with a gqlerror.List is a partial
// success.
package jianshu

//go:generate go run ../../cmd/bindgen generate --config ../../bindgen.yaml
