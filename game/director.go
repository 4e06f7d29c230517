package game

// Director plays a session by issuing the same commands a human would.
type Director interface {
	/**
	 * Initialize the director for a freshly started game
	 */
	Init(*Session)

	/**
	 * Perform a single step of actions, returning false if no move was made
	 */
	Act() bool
}

// Observer is notified of game lifecycle events. Both methods are called
// synchronously from inside the session command that caused them.
type Observer interface {
	/**
	 * The first safe cell of the game was exposed; elapsed time starts here
	 */
	Started(*Session)

	/**
	 * The game was won or lost
	 */
	Ended(*Session)
}
