// Package gocube models a 3x3 cube entered sticker by sticker, generates
// scrambles and steps through solutions returned by an external solver.
//
// # Features
//
//   - 54-cell facelet board in U R F D L B order with a fixed six-color palette
//   - Scrambles of 20 moves with no face turned twice in a row
//   - A stepper for following a solution move by move
//   - Pluggable solver and move applier collaborators
//
// # Quick Start
//
//	session := gocube.NewSession(mySolver, gocube.WithMoveApplier(gocube.FaceletApplier{}))
//
//	// Paint stickers as the user reads them off the physical cube
//	session.Paint(gocube.FaceletIndex(gocube.FaceF, 0), gocube.Red)
//
//	if err := session.Solve(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	for session.Next() {
//	    m, _ := session.Stepper().Current()
//	    fmt.Println("Turn:", m.Notation())
//	}
//
// # Facelet String
//
// Solvers and move appliers exchange the board as a 54-character string,
// nine characters per face in the order U, R, F, D, L, B, each face read
// row by row. A solved cube is:
//
//	UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB
//
// # Scrambles Without an Applier
//
// A Session created without WithMoveApplier still generates scrambles but
// reports them with Applied set to false and leaves the board untouched.
package gocube
