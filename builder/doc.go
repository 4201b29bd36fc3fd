// Package builder provides deterministic net constructors for common
// topologies, plus a generated letter-point fixture for tests, benchmarks
// and examples.
//
// What:
//
//   - Line(points...):         open chain  A-B-C-…
//   - Ring(points...):         closed loop A-B-C-…-A
//   - Star(center, leaves...): hub and spokes
//   - Mesh(points...):         complete graph, every pair connected
//   - Letters(n):              n points with identifiers "A".."Z"
//
// Every constructor populates both endpoints of every edge, so the
// resulting nets are undirected by convention. Node order and connection
// order follow the input point order, making every constructed net
// deterministic and therefore every search over it deterministic.
//
// Why:
//   - The core package deliberately has no topology knowledge; assembling
//     interesting nets by hand is repetitive and easy to get asymmetric.
//     These constructors produce symmetric, validated fixtures in one call.
//
// Errors:
//
//   - ErrTooFewPoints   a constructor received fewer points than its
//     topology needs (Line 2, Ring 3, Star 1+1, Mesh 2).
//   - ErrDuplicatePoint two input points share an identifier.
//   - ErrLetterCount    Letters(n) with n outside 1..26.
package builder
