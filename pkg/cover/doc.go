/*
Package cover computes minimum-cost covers of a topic universe by a list of books.

Every non-empty subset of the books is enumerated, smallest subsets first and
in lexicographic index order within a size. The cheapest subset whose topics
contain the target wins. The search is exact and exponential in the number of
books; it is meant for catalogs of a few dozen books at most.
*/
package cover
