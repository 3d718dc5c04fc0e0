// Package depends provides a FastAPI-compatible, request-scoped dependency
// injection system for Go.
//
// # Overview
//
// A handler declares what it needs; the resolver builds it. Each parameter
// of a provider is either dependency-marked (another provider produces it)
// or plain (the caller of Invoke supplies it). Per request, every provider
// runs at most once, and every scoped provider's release runs exactly once,
// in reverse acquisition order — on success and on failure alike.
//
// It mirrors the semantics of FastAPI's Depends() as closely as Go allows.
// Because Go has no introspectable keyword defaults, a provider's signature
// is declared explicitly at registration instead of read off the function.
//
// # Providers
//
//	// FastAPI:
//	// def get_db():
//	//     conn = connect()
//	//     try:     yield conn
//	//     finally: conn.close()
//	getDB := depends.NewScoped("get_db", func(args depends.Args) (any, depends.ReleaseFunc, error) {
//	    conn, err := connect()
//	    if err != nil {
//	        return nil, nil, err
//	    }
//	    return conn, conn.Close, nil
//	})
//
//	// FastAPI: def get_user(conn = Depends(get_db)): ...
//	getUser := depends.New("get_user", func(args depends.Args) (any, error) {
//	    return fetchUser(args["conn"]), nil
//	}, depends.Depends("conn", getDB))
//
// # Invoking
//
//	invoker := depends.NewInvoker()
//	profile, err := invoker.Invoke(handler, depends.Args{"id": "42"})
//
// Plain parameters come from the Args passed to Invoke; dependency-marked
// parameters are resolved through the graph. Diamond dependencies (two
// providers sharing a third) are evaluated once per request and never
// cached across requests.
//
// # Overrides
//
//	// FastAPI: app.dependency_overrides[get_db] = fake_db
//	invoker.Override(getDB, fakeDB)
//
// # Errors
//
// Configuration mistakes (cycles, unresolvable parameters) surface as
// ErrCircularDependency / ErrUnresolvedParameter. A failing provider is
// wrapped in ProviderError; failing releases aggregate into TeardownError
// without stopping the drain or masking the primary failure.
package depends
