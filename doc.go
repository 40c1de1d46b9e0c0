/*
Package nerf is a retained-mode widget toolkit: a tree of widgets that negotiate layout space, draw themselves onto a Canvas and handle input events.

The raster, devdraw and term packages provide Canvas implementations and hosts. Examples are in the examples/ directory.

Instructions and information

A user interface is a tree of Widgets like Row, Column, Padder, Button, Text, etc. Every widget implements three operations: Measure, Draw and HandleEvent. Containers own their kids and recompute the kid rects from Measure on every Draw and HandleEvent, so changing a widget's state never leaves stale layout behind. Widgets are generic over E, the type of application events carried by EventUser; use struct{} if you have none.

Wrap the tree in an App. The host calls App.Render with a Canvas and App.Dispatch for each input event. Responses bubble up: a widget reports Redraw after changing how it looks, AnimationFrame to be called again after the next frame, and Clicked for a button press. A custom widget can consume a flag of its kids with Response.Without.

Layout

Each widget asks for space along each axis with a SizeRequirement: None, Fixed, Min, Max, MinMax or Flex. Requirements of kids placed next to each other are combined with Stacked, those of kids placed over each other with Beside. Distribute turns the requirements of a list of kids into sizes: lower bounds first, then the remaining space shared by flex weight, without exceeding upper bounds. If the lower bounds do not fit, all are scaled down proportionally.

A kid that ends up with an empty rect, for example after padding, is not drawn and gets no events.

Single goroutine

Nothing in nerf is safe for concurrent use, and nothing needs to be: hosts read window input from one channel and call App from the goroutine reading it.
*/
package nerf
