/*
The reducer narrows a catalog down to the books a user wants to consider before it is handed to a solver.
Books are kept or dropped by regular expressions over their names; the solver still searches every subset of the rest.
*/
package reducer
