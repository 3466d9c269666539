// Package loop drives the question/answer cycle between a game.Tracker and
// line-oriented terminal input. It owns all I/O: the tracker never touches a
// stream. Each iteration renders the next range question, reads lines until a
// recognized yes/no token appears, feeds the answer back, and reports
// progress until the secret is known.
package loop
