// MessagePack request / response adapters.
/*
The boundary package sits between an HTTP framework and typed application values.
Two adapters work on opposite sides of a value:

• Extractor decides whether an incoming body should be treated as MessagePack from
its declared Content-Type, and if so decodes it into a typed receiver or fails with
a classified packerrors error.

• Responder encodes a typed value to MessagePack, tags the result with the
canonical "application/msgpack" Content-Type, and falls back to a plain-text
internal-server-error response if encoding fails. It never surfaces an unhandled
failure to the caller.

Both adapters are stateless, synchronous transforms over in-memory data. Each call
is independent, so a single Extractor or Responder can be shared freely across
request handlers.

Extractor example:

	engine, _ := encoding.NewContentEngine()
	extractor := boundary.NewExtractor(engine)

	func handleCreateUser(writer http.ResponseWriter, req *http.Request) {
		user := new(CreateUser)
		if err := extractor.Extract(boundary.NewRequestSource(req), user); err != nil {
			packErr := err.(*packerrors.PackError)
			http.Error(writer, packErr.Error(), packErr.HttpCode())
			return
		}
		// use user
	}

Responder example:

	responder := boundary.NewResponder(engine)

	func handleGetUser(writer http.ResponseWriter, req *http.Request) {
		user := findUser(req)
		_ = responder.Respond(user).Write(writer)
	}
*/
package boundary
