// Package service provides typed accessors for the CV-Hub GraphQL entities:
// users, CVs, skills, languages, projects, departments and positions.
//
// Each service wraps the authenticated request pipeline behind plain Go
// methods, so callers never assemble GraphQL documents themselves. All
// failures come back categorized as *apierror.Error values; check them with
// apierror.IsKind or errors.Is.
//
// # ID Guards
//
// The API stores user and CV keys as 32-bit integers. Users.Get and CVs.Get
// (and the corresponding update/delete calls) validate the identifier
// locally first: a non-numeric or out-of-range ID resolves to the matching
// not-found category without touching the network, since no such record can
// exist.
//
// # Usage Example
//
//	users := service.NewUsers(client)
//
//	all, err := users.List(ctx)
//	if err != nil {
//		if apierror.IsUnauthorized(err) {
//			// session expired, prompt for login
//		}
//		return err
//	}
//
//	me, err := users.Get(ctx, "42")
//	if apierror.IsKind(err, apierror.KindUserNotFound) {
//		// the ID never existed
//	}
package service
